package main

import (
	"context"
	"sync"

	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/catalogapi"
	"github.com/ideal-institute/bookstall/internal/config"
	"github.com/ideal-institute/bookstall/internal/display"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/session"
	"github.com/ideal-institute/bookstall/internal/storage"
	"github.com/ideal-institute/bookstall/internal/tui/state"
	"github.com/ideal-institute/bookstall/internal/version"
)

// services wires the Catalog API client, the session store and the use
// cases. It is built on first use because configuration is only loaded once
// the root command runs.
type services struct {
	once sync.Once
	err  error

	api     *catalogapi.Client
	kv      storage.KV
	session *session.Context
	browse  *app.BrowseUseCase
	auth    *app.AuthUseCase
	sell    *app.SellUseCase
	profile *app.ProfileUseCase
	delete  *app.DeleteUseCase
}

var svc = &services{}

func (s *services) init() error {
	s.once.Do(func() {
		kv, err := storage.NewFromConfig()
		if err != nil {
			s.err = err
			return
		}
		s.kv = kv
		s.api = catalogapi.NewFromConfig()
		s.session = session.New(kv)
		s.browse = app.NewBrowseUseCase(s.api, s.session)
		s.auth = app.NewAuthUseCase(s.api, s.session)
		s.sell = app.NewSellUseCase(s.api, s.session)
		s.profile = app.NewProfileUseCase(s.api, s.session)
		s.delete = app.NewDeleteUseCase(s.api, s.session)
	})
	return s.err
}

// Close releases the session store if it was opened.
func (s *services) Close() error {
	if s.session == nil {
		return nil
	}
	return s.session.Close()
}

func (s *services) Login(ctx context.Context, roll, password string) (domain.User, error) {
	if err := s.init(); err != nil {
		return domain.User{}, err
	}
	return s.auth.Login(ctx, roll, password)
}

func (s *services) Register(ctx context.Context, input app.RegisterInput) (domain.User, error) {
	if err := s.init(); err != nil {
		return domain.User{}, err
	}
	return s.auth.Register(ctx, input)
}

func (s *services) Logout() error {
	if err := s.init(); err != nil {
		return err
	}
	return s.auth.Logout()
}

func (s *services) Whoami() (string, error) {
	if err := s.init(); err != nil {
		return "", err
	}
	return s.auth.Whoami()
}

func (s *services) Browse(ctx context.Context, input app.BrowseInput) ([]domain.Listing, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	return s.browse.Execute(ctx, input)
}

func (s *services) Sell(ctx context.Context, listing domain.NewListing) (catalogapi.Result, error) {
	if err := s.init(); err != nil {
		return catalogapi.Result{}, err
	}
	return s.sell.Execute(ctx, listing)
}

func (s *services) Delete(ctx context.Context, id domain.FlexValue) (catalogapi.Result, error) {
	if err := s.init(); err != nil {
		return catalogapi.Result{}, err
	}
	return s.delete.Execute(ctx, id)
}

func (s *services) Profile(ctx context.Context, roll string) (app.Profile, error) {
	if err := s.init(); err != nil {
		return app.Profile{}, err
	}
	return s.profile.Execute(ctx, roll)
}

func (s *services) ImageURL(rel string) string {
	if err := s.init(); err != nil {
		return rel
	}
	return s.api.ImageURL(rel)
}

func (s *services) Version() string {
	return version.String()
}

// CellSize returns the configured pixel size of a terminal cell.
func (s *services) CellSize() (width, height int) {
	return config.GetInt("viewport_cell_width_px", 8), config.GetInt("viewport_cell_height_px", 16)
}

// TUIDeps implements the TUI dependency loader.
func (s *services) TUIDeps() (state.Deps, error) {
	if err := s.init(); err != nil {
		return state.Deps{}, err
	}
	cellW, cellH := s.CellSize()
	return state.Deps{
		Browse:     s.browse,
		Auth:       s.auth,
		Sell:       s.sell,
		Profile:    s.profile,
		Delete:     s.delete,
		Session:    s.session,
		Images:     s.api.ImageURL,
		Monitor:    display.NewMonitor(0, 0),
		CellWidth:  cellW,
		CellHeight: cellH,
	}, nil
}

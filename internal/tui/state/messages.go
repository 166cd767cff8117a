// Package state provides the bubbletea model of the bookstall TUI and the
// messages its commands produce.
package state

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/catalogapi"
	"github.com/ideal-institute/bookstall/internal/domain"
)

// BooksLoadedMsg is sent when the buy page catalog has been fetched.
type BooksLoadedMsg struct {
	Catalog *domain.Catalog
	Err     error
}

// ProfileLoadedMsg is sent when a profile and its listings have been fetched.
type ProfileLoadedMsg struct {
	Roll    string
	Profile app.Profile
	Err     error
}

// AuthCompletedMsg is sent when a login or registration finishes.
type AuthCompletedMsg struct {
	User     domain.User
	Register bool
	Err      error
}

// ListingSubmittedMsg is sent when the sell form upload finishes.
type ListingSubmittedMsg struct {
	Result catalogapi.Result
	Err    error
}

// ListingDeletedMsg is sent when a delete request finishes.
type ListingDeletedMsg struct {
	ID     domain.FlexValue
	Result catalogapi.Result
	Err    error
}

// clearStatusMsg clears the status line if no newer message replaced it.
type clearStatusMsg struct {
	seq int
}

func loadBooksCmd(ctx context.Context, browse *app.BrowseUseCase) tea.Cmd {
	return func() tea.Msg {
		catalog, err := browse.Load(ctx, false)
		return BooksLoadedMsg{Catalog: catalog, Err: err}
	}
}

func loadProfileCmd(ctx context.Context, profiles *app.ProfileUseCase, roll string) tea.Cmd {
	return func() tea.Msg {
		profile, err := profiles.Execute(ctx, roll)
		return ProfileLoadedMsg{Roll: roll, Profile: profile, Err: err}
	}
}

func loginCmd(ctx context.Context, auth *app.AuthUseCase, roll, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := auth.Login(ctx, roll, password)
		return AuthCompletedMsg{User: user, Err: err}
	}
}

func registerCmd(ctx context.Context, auth *app.AuthUseCase, input app.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		user, err := auth.Register(ctx, input)
		return AuthCompletedMsg{User: user, Register: true, Err: err}
	}
}

// submitListingCmd reads the photo files and uploads the listing.
func submitListingCmd(ctx context.Context, sell *app.SellUseCase, listing domain.NewListing, photoPaths []string, readFile func(string) ([]byte, error)) tea.Cmd {
	return func() tea.Msg {
		for _, path := range photoPaths {
			data, err := readFile(path)
			if err != nil {
				return ListingSubmittedMsg{Err: &app.PageError{Message: "Failed to read photo " + path, Err: err}}
			}
			listing.Photos = append(listing.Photos, domain.Photo{Filename: filepath.Base(path), Data: data})
		}
		res, err := sell.Execute(ctx, listing)
		return ListingSubmittedMsg{Result: res, Err: err}
	}
}

func deleteListingCmd(ctx context.Context, del *app.DeleteUseCase, id domain.FlexValue) tea.Cmd {
	return func() tea.Msg {
		res, err := del.Execute(ctx, id)
		return ListingDeletedMsg{ID: id, Result: res, Err: err}
	}
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusClearDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

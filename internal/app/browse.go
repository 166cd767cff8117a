package app

import (
	"context"
	"fmt"

	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/logging"
)

// BrowseClient defines dependencies required to browse listings.
type BrowseClient interface {
	ListBooks(ctx context.Context) ([]domain.Listing, error)
}

// BrowseInput holds the buy page filters.
type BrowseInput struct {
	Criteria   domain.Criteria
	IncludeOwn bool
}

// BrowseUseCase loads the buy page catalog.
type BrowseUseCase struct {
	client  BrowseClient
	session Session
}

// NewBrowseUseCase creates a new browse use-case.
func NewBrowseUseCase(client BrowseClient, session Session) *BrowseUseCase {
	if client == nil {
		panic("NewBrowseUseCase: client dependency cannot be nil")
	}
	if session == nil {
		panic("NewBrowseUseCase: session dependency cannot be nil")
	}
	return &BrowseUseCase{client: client, session: session}
}

// Load fetches the catalog snapshot. The signed-in student's own listings are
// left out unless includeOwn is set.
func (u *BrowseUseCase) Load(ctx context.Context, includeOwn bool) (*domain.Catalog, error) {
	roll, err := u.session.Require()
	if err != nil {
		return nil, err
	}
	all, err := u.client.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse: failed to fetch books: %w", err)
	}
	snapshot := all
	if !includeOwn {
		snapshot = domain.ExcludeSeller(all, roll)
	}
	logging.Debug("catalog loaded", "total", len(all), "others", len(snapshot), "roll_number", roll)
	return domain.NewCatalog(snapshot), nil
}

// Execute loads the catalog and applies the input criteria.
func (u *BrowseUseCase) Execute(ctx context.Context, input BrowseInput) ([]domain.Listing, error) {
	catalog, err := u.Load(ctx, input.IncludeOwn)
	if err != nil {
		return nil, err
	}
	if input.Criteria.IsEmpty() {
		return catalog.Visible(), nil
	}
	return catalog.Search(input.Criteria), nil
}

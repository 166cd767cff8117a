package app

import (
	"context"
	"strings"

	"github.com/ideal-institute/bookstall/internal/catalogapi"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/logging"
)

// DeleteClient defines dependencies required to delete a listing.
type DeleteClient interface {
	DeleteBook(ctx context.Context, id domain.FlexValue, roll string) (catalogapi.Result, error)
}

// DeleteUseCase removes one of the signed-in student's listings.
type DeleteUseCase struct {
	client  DeleteClient
	session Session
}

// NewDeleteUseCase creates a new delete use-case.
func NewDeleteUseCase(client DeleteClient, session Session) *DeleteUseCase {
	if client == nil {
		panic("NewDeleteUseCase: client dependency cannot be nil")
	}
	if session == nil {
		panic("NewDeleteUseCase: session dependency cannot be nil")
	}
	return &DeleteUseCase{client: client, session: session}
}

// Execute deletes listing id. The result message carries the API's debug
// text about the image removal when present.
func (u *DeleteUseCase) Execute(ctx context.Context, id domain.FlexValue) (catalogapi.Result, error) {
	roll, err := u.session.Require()
	if err != nil {
		return catalogapi.Result{}, err
	}
	if id.IsZero() || strings.TrimSpace(id.String()) == "" {
		return catalogapi.Result{}, &PageError{Message: "Failed to delete book: missing book id"}
	}

	res, err := u.client.DeleteBook(ctx, id, roll)
	if err != nil {
		return catalogapi.Result{}, pageError(err, "Failed to delete book: ", MsgUnknownError,
			"Failed to delete book. Please try again.")
	}
	logging.Info("listing deleted", "book_id", id.String(), "roll_number", roll, "debug", res.Debug)

	res.Message = MsgDeleted
	if res.Debug != "" {
		res.Message += "\n\nImage deletion debug: " + res.Debug
	}
	return res, nil
}

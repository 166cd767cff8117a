package app

import (
	"context"
	"errors"

	"github.com/ideal-institute/bookstall/internal/catalogapi"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/logging"
)

// SellClient defines dependencies required to list a book.
type SellClient interface {
	UploadBook(ctx context.Context, listing domain.NewListing) (catalogapi.Result, error)
}

// SellUseCase lists a book for the signed-in student.
type SellUseCase struct {
	client  SellClient
	session Session
}

// NewSellUseCase creates a new sell use-case.
func NewSellUseCase(client SellClient, session Session) *SellUseCase {
	if client == nil {
		panic("NewSellUseCase: client dependency cannot be nil")
	}
	if session == nil {
		panic("NewSellUseCase: session dependency cannot be nil")
	}
	return &SellUseCase{client: client, session: session}
}

// Execute uploads listing with the seller taken from the session.
func (u *SellUseCase) Execute(ctx context.Context, listing domain.NewListing) (catalogapi.Result, error) {
	roll, err := u.session.Require()
	if err != nil {
		return catalogapi.Result{}, err
	}
	listing.SellerRollNo = roll
	if err := listing.Validate(); err != nil {
		return catalogapi.Result{}, &PageError{Message: "Failed to list book: " + err.Error(), Err: err}
	}

	res, err := u.client.UploadBook(ctx, listing)
	if err != nil {
		var apiErr *catalogapi.APIError
		if errors.As(err, &apiErr) {
			logging.Warn("upload rejected", "message", apiErr.Message, "debug", apiErr.Debug)
		}
		return catalogapi.Result{}, pageError(err, "Failed to list book: ", MsgUnknownError,
			"Error connecting to server: "+err.Error())
	}
	if res.Debug != "" {
		logging.Debug("upload debug info", "debug", res.Debug)
	}
	res.Message = MsgListed
	return res, nil
}

// Package app holds the use cases behind the CLI commands and TUI pages.
package app

import (
	"errors"

	"github.com/ideal-institute/bookstall/internal/catalogapi"
)

// Session is the signed-in state a use case reads or changes.
type Session interface {
	IsAuthenticated() bool
	RollNumber() string
	Require() (string, error)
	SignIn(roll string) error
	SignOut() error
}

// User-facing messages.
const (
	MsgNoBooks        = "No books found"
	MsgLoadingBooks   = "Loading books..."
	MsgListed         = "Book listed successfully!"
	MsgDeleted        = "Book listing deleted successfully!"
	MsgUserNotFound   = "User not found"
	MsgUnknownError   = "Unknown error"
	MsgSessionMissing = "User session not found"
)

// PageError is an error whose Message is shown to the student as is.
type PageError struct {
	Message string
	Err     error
}

func (e *PageError) Error() string { return e.Message }

func (e *PageError) Unwrap() error { return e.Err }

// pageError builds a PageError. API errors show their message with apiPrefix
// (or apiFallback when the API sent none); anything else shows networkMsg.
func pageError(err error, apiPrefix, apiFallback, networkMsg string) error {
	var apiErr *catalogapi.APIError
	if errors.As(err, &apiErr) {
		return &PageError{Message: apiPrefix + catalogapi.MessageOf(err, apiFallback), Err: err}
	}
	return &PageError{Message: networkMsg, Err: err}
}

// MessageFor returns the text to show for err.
func MessageFor(err error) string {
	var pe *PageError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

// Package errors reports failures to the student, on the console or in the TUI
// status line.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/catalogapi"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/session"
)

// Describe returns the message shown for err.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var (
		pageErr   *app.PageError
		fieldErr  *domain.FieldError
		statusErr *catalogapi.StatusError
		apiErr    *catalogapi.APIError
	)
	switch {
	case stderrors.Is(err, session.ErrNotAuthenticated):
		return "Please log in to continue"
	case stderrors.As(err, &pageErr):
		return pageErr.Message
	case stderrors.As(err, &fieldErr):
		return fmt.Sprintf("Invalid %s: %s", fieldErr.Field, fieldErr.Message)
	case stderrors.As(err, &apiErr):
		return apiErr.Error()
	case stderrors.As(err, &statusErr):
		return fmt.Sprintf("HTTP error! Status: %d", statusErr.StatusCode)
	default:
		return err.Error()
	}
}

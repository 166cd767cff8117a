package app

import (
	"context"
	"sync"

	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/logging"
)

// ProfileClient defines dependencies required to show a profile.
type ProfileClient interface {
	GetUserProfile(ctx context.Context, roll string) (domain.User, error)
	GetUserBooks(ctx context.Context, roll string) ([]domain.Listing, error)
}

// Profile is a student together with their listings.
type Profile struct {
	User  domain.User
	Books []domain.Listing
	// Own is set when the profile belongs to the signed-in student.
	Own bool
}

// ProfileUseCase loads seller profiles.
type ProfileUseCase struct {
	client  ProfileClient
	session Session
}

// NewProfileUseCase creates a new profile use-case.
func NewProfileUseCase(client ProfileClient, session Session) *ProfileUseCase {
	if client == nil {
		panic("NewProfileUseCase: client dependency cannot be nil")
	}
	if session == nil {
		panic("NewProfileUseCase: session dependency cannot be nil")
	}
	return &ProfileUseCase{client: client, session: session}
}

// Execute fetches the profile and listings of roll, or of the signed-in
// student when roll is empty. Both requests run concurrently. A failed
// listings request yields no books rather than an error.
func (u *ProfileUseCase) Execute(ctx context.Context, roll string) (Profile, error) {
	self, err := u.session.Require()
	if err != nil {
		return Profile{}, err
	}
	if roll == "" {
		roll = self
	}

	var (
		wg       sync.WaitGroup
		user     domain.User
		userErr  error
		books    []domain.Listing
		booksErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		user, userErr = u.client.GetUserProfile(ctx, roll)
	}()
	go func() {
		defer wg.Done()
		books, booksErr = u.client.GetUserBooks(ctx, roll)
	}()
	wg.Wait()

	if userErr != nil {
		if roll == self {
			return Profile{}, &PageError{Message: "Failed to load profile", Err: userErr}
		}
		return Profile{}, pageError(userErr, "", MsgUserNotFound, "Failed to load user profile")
	}
	if booksErr != nil {
		logging.Warn("user books fetch failed", "roll_number", roll, "error", booksErr)
		books = nil
	}
	if books == nil {
		books = []domain.Listing{}
	}
	return Profile{User: user, Books: books, Own: roll == self}, nil
}

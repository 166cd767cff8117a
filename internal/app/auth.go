package app

import (
	"context"
	"fmt"

	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/logging"
)

// AuthClient defines dependencies required to sign in and register.
type AuthClient interface {
	Login(ctx context.Context, roll, password string) (domain.User, error)
	Register(ctx context.Context, roll, name, password string) (domain.User, error)
	Ping(ctx context.Context) error
}

// RegisterInput is the register form.
type RegisterInput struct {
	RollNumber      string
	Name            string
	Password        string
	ConfirmPassword string
}

// AuthUseCase signs students in and out.
type AuthUseCase struct {
	client  AuthClient
	session Session
}

// NewAuthUseCase creates a new auth use-case.
func NewAuthUseCase(client AuthClient, session Session) *AuthUseCase {
	if client == nil {
		panic("NewAuthUseCase: client dependency cannot be nil")
	}
	if session == nil {
		panic("NewAuthUseCase: session dependency cannot be nil")
	}
	return &AuthUseCase{client: client, session: session}
}

// Login validates the credentials, probes the API, signs in and persists the
// session. The probe result is only logged.
func (u *AuthUseCase) Login(ctx context.Context, roll, password string) (domain.User, error) {
	if err := domain.ValidateLogin(roll, password); err != nil {
		return domain.User{}, err
	}
	if err := u.client.Ping(ctx); err != nil {
		logging.Warn("API test failed", "error", err)
	}

	user, err := u.client.Login(ctx, roll, password)
	if err != nil {
		return domain.User{}, pageError(err, "", "Login failed",
			fmt.Sprintf("Network error: %v. Please check your connection.", err))
	}
	if err := u.session.SignIn(user.RollNumber); err != nil {
		return domain.User{}, err
	}
	logging.Info("login succeeded", "roll_number", user.RollNumber)
	return user, nil
}

// Register validates the form, creates the account and signs in.
func (u *AuthUseCase) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	if err := domain.ValidateRegistration(input.RollNumber, input.Name, input.Password, input.ConfirmPassword); err != nil {
		return domain.User{}, err
	}

	user, err := u.client.Register(ctx, input.RollNumber, input.Name, input.Password)
	if err != nil {
		return domain.User{}, pageError(err, "", "Registration failed",
			"Network error. Please check your connection.")
	}
	if err := u.session.SignIn(user.RollNumber); err != nil {
		return domain.User{}, err
	}
	logging.Info("registration succeeded", "roll_number", user.RollNumber)
	return user, nil
}

// Logout clears the session.
func (u *AuthUseCase) Logout() error {
	roll := u.session.RollNumber()
	if err := u.session.SignOut(); err != nil {
		return err
	}
	logging.Info("logged out", "roll_number", roll)
	return nil
}

// Whoami returns the signed-in roll number.
func (u *AuthUseCase) Whoami() (string, error) {
	return u.session.Require()
}

// Package session keeps the signed-in student between runs.
package session

import (
	"errors"
	"fmt"

	"github.com/ideal-institute/bookstall/internal/storage"
)

// Keys written to the store.
const (
	KeyAuthenticated = "isAuthenticated"
	KeyRollNumber    = "userRollNumber"
)

// ErrNotAuthenticated is returned by Require when nobody is signed in.
var ErrNotAuthenticated = errors.New("not logged in: run 'bookstall login' first")

// Context is the authentication state persisted in a storage.KV.
type Context struct {
	kv storage.KV
}

// New returns a session context over kv.
func New(kv storage.KV) *Context {
	if kv == nil {
		panic("session.New: kv cannot be nil")
	}
	return &Context{kv: kv}
}

// IsAuthenticated reports whether a student is signed in. Read errors count
// as signed out.
func (c *Context) IsAuthenticated() bool {
	v, ok, err := c.kv.Get(KeyAuthenticated)
	return err == nil && ok && v == "true"
}

// RollNumber returns the signed-in roll number, or "".
func (c *Context) RollNumber() string {
	v, _, err := c.kv.Get(KeyRollNumber)
	if err != nil {
		return ""
	}
	return v
}

// SignIn records roll as the signed-in student. The roll number is written
// before the authenticated flag, and a failed flag write drops it again.
func (c *Context) SignIn(roll string) error {
	if err := c.kv.Set(KeyRollNumber, roll); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := c.kv.Set(KeyAuthenticated, "true"); err != nil {
		_ = c.kv.Delete(KeyRollNumber)
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SignOut forgets the signed-in student.
func (c *Context) SignOut() error {
	if err := c.kv.Delete(KeyAuthenticated); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := c.kv.Delete(KeyRollNumber); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Require returns the signed-in roll number, or ErrNotAuthenticated when
// the session is missing either half.
func (c *Context) Require() (string, error) {
	if !c.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}
	roll := c.RollNumber()
	if roll == "" {
		return "", ErrNotAuthenticated
	}
	return roll, nil
}

// Close closes the underlying store.
func (c *Context) Close() error {
	return c.kv.Close()
}

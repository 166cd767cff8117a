package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Limits enforced before anything is sent to the Catalog API.
const (
	RollNumberLength  = 10
	MinPasswordLength = 6
	MaxPhotos         = 2
	MaxPhotoBytes     = 5 << 20
)

// Validation errors.
var (
	ErrRollNumberLength = errors.New("roll number must be exactly 10 characters long")
	ErrPasswordRequired = errors.New("password is required")
	ErrNameRequired     = errors.New("name is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// ValidateRollNumber checks that roll is exactly RollNumberLength characters.
func ValidateRollNumber(roll string) error {
	if utf8.RuneCountInString(roll) != RollNumberLength {
		return ErrRollNumberLength
	}
	return nil
}

// ValidateLogin checks login input in the order the login form reports it.
func ValidateLogin(roll, password string) error {
	if err := ValidateRollNumber(roll); err != nil {
		return err
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateRegistration checks registration input in the order the register
// form reports it.
func ValidateRegistration(roll, name, password, confirm string) error {
	if err := ValidateRollNumber(roll); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// Photo is an image attached to a new listing.
type Photo struct {
	Filename string
	Data     []byte
}

// ContentType sniffs the photo's MIME type.
func (p Photo) ContentType() string {
	return http.DetectContentType(p.Data)
}

// NewListing is the sell form input.
type NewListing struct {
	SellerRollNo string
	Title        string
	BookYear     string
	Subject      string
	Category     string
	Regulation   string
	Condition    string
	Price        string
	Description  string
	Photos       []Photo
}

// FieldError reports an invalid sell form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErr(field, format string, args ...any) error {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the listing and returns the first invalid field.
func (n NewListing) Validate() error {
	if err := ValidateRollNumber(n.SellerRollNo); err != nil {
		return fieldErr("seller_roll_no", "%v", err)
	}
	if strings.TrimSpace(n.Title) == "" {
		return fieldErr("book_name", "title is required")
	}
	if strings.TrimSpace(n.BookYear) == "" {
		return fieldErr("book_year", "year is required")
	}
	if strings.TrimSpace(n.Subject) == "" {
		return fieldErr("subject", "subject is required")
	}
	if !IsBranch(n.Category) {
		return fieldErr("category", "must be one of %s", strings.Join(Branches, ", "))
	}
	if !IsRegulation(n.Regulation) {
		return fieldErr("regulation", "must be one of %s", strings.Join(Regulations, ", "))
	}
	if !IsCondition(n.Condition) {
		return fieldErr("condition", "must be one of %s", strings.Join(Conditions, ", "))
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(n.Price), 64)
	if err != nil {
		return fieldErr("price", "%q is not a number", n.Price)
	}
	if price < 0 {
		return fieldErr("price", "must not be negative")
	}
	if len(n.Photos) > MaxPhotos {
		return fieldErr("photos", "at most %d photos allowed", MaxPhotos)
	}
	for _, p := range n.Photos {
		if len(p.Data) > MaxPhotoBytes {
			return fieldErr("photos", "%s is larger than 5MB", p.Filename)
		}
		if !strings.HasPrefix(p.ContentType(), "image/") {
			return fieldErr("photos", "%s is not an image", p.Filename)
		}
	}
	return nil
}

// Package domain provides the domain layer of the textbook marketplace: listings,
// users, the catalog filter and input validation.
package domain

import (
	"encoding/json"
	"strings"
)

// Branches, regulations, conditions and year labels offered by the marketplace.
var (
	Branches    = []string{"CSE", "COS", "CSM", "ECE", "MECH", "EEE"}
	Regulations = []string{"R20", "R23"}
	Conditions  = []string{"New", "Like New", "Used"}
	// FilterYears are the year options of the buy page.
	FilterYears = []string{"First Year", "Second Year", "Third Year", "Fourth Year"}
	// ListingYears are the year options of the sell form.
	ListingYears = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}
)

// Listing is a book offered for sale, as returned by the Catalog API.
type Listing struct {
	ID           FlexValue `json:"id" yaml:"id"`
	Title        string    `json:"book_name" yaml:"book_name"`
	Subject      string    `json:"subject,omitempty" yaml:"subject,omitempty"`
	Category     string    `json:"category,omitempty" yaml:"category,omitempty"`
	Regulation   string    `json:"regulation,omitempty" yaml:"regulation,omitempty"`
	BookYear     FlexValue `json:"book_year,omitzero" yaml:"book_year,omitempty"`
	Year         FlexValue `json:"year,omitzero" yaml:"year,omitempty"`
	Condition    string    `json:"book_condition,omitempty" yaml:"book_condition,omitempty"`
	Price        FlexValue `json:"price" yaml:"price"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	SellerRollNo string    `json:"seller_roll_no" yaml:"seller_roll_no"`
	CreatedAt    string    `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// UnmarshalJSON decodes a listing leniently: a field holding a value of the
// wrong JSON type is left empty, so it fails every filter instead of failing
// the whole snapshot.
func (l *Listing) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           looseFlex   `json:"id"`
		Title        looseString `json:"book_name"`
		Subject      looseString `json:"subject"`
		Category     looseString `json:"category"`
		Regulation   looseString `json:"regulation"`
		BookYear     looseFlex   `json:"book_year"`
		Year         looseFlex   `json:"year"`
		Condition    looseString `json:"book_condition"`
		Price        looseFlex   `json:"price"`
		Description  looseString `json:"description"`
		ImageURL     looseString `json:"image_url"`
		SellerRollNo looseString `json:"seller_roll_no"`
		CreatedAt    looseString `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = Listing{
		ID:           FlexValue(raw.ID),
		Title:        string(raw.Title),
		Subject:      string(raw.Subject),
		Category:     string(raw.Category),
		Regulation:   string(raw.Regulation),
		BookYear:     FlexValue(raw.BookYear),
		Year:         FlexValue(raw.Year),
		Condition:    string(raw.Condition),
		Price:        FlexValue(raw.Price),
		Description:  string(raw.Description),
		ImageURL:     string(raw.ImageURL),
		SellerRollNo: string(raw.SellerRollNo),
		CreatedAt:    string(raw.CreatedAt),
	}
	return nil
}

// looseString is a JSON string; any other value decodes as "".
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		v = ""
	}
	*s = looseString(v)
	return nil
}

// looseFlex is a FlexValue that decodes unsupported values as absent.
type looseFlex FlexValue

func (f *looseFlex) UnmarshalJSON(data []byte) error {
	var v FlexValue
	if err := v.UnmarshalJSON(data); err != nil {
		v = FlexValue{}
	}
	*f = looseFlex(v)
	return nil
}

// Branch is the branch shown for a listing, "N/A" when it has no category.
func (l Listing) Branch() string {
	if l.Category == "" {
		return "N/A"
	}
	return l.Category
}

// HasImage reports whether the listing carries an image path.
func (l Listing) HasImage() bool {
	return strings.TrimSpace(l.ImageURL) != ""
}

// User is a registered student.
type User struct {
	RollNumber string `json:"roll_number" yaml:"roll_number"`
	Name       string `json:"name" yaml:"name"`
	CreatedAt  string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// IsBranch reports whether b is one of Branches.
func IsBranch(b string) bool { return contains(Branches, b) }

// IsRegulation reports whether r is one of Regulations.
func IsRegulation(r string) bool { return contains(Regulations, r) }

// IsCondition reports whether c is one of Conditions.
func IsCondition(c string) bool { return contains(Conditions, c) }

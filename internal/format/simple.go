package format

import (
	"fmt"
	"io"

	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/domain"
)

// NoImage is printed for listings without a photo.
const NoImage = "No Image"

// SimpleFormatter prints a card per listing, like the buy page.
type SimpleFormatter struct {
	images ImageResolver
}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter(images ImageResolver) *SimpleFormatter {
	return &SimpleFormatter{images: images}
}

// FormatListings writes one card per listing separated by blank lines.
func (f *SimpleFormatter) FormatListings(listings []domain.Listing, writer io.Writer) error {
	for i, l := range listings {
		if i > 0 {
			if _, err := fmt.Fprintln(writer); err != nil {
				return err
			}
		}
		if err := f.writeCard(l, writer); err != nil {
			return err
		}
	}
	return nil
}

func (f *SimpleFormatter) writeCard(l domain.Listing, w io.Writer) error {
	image := NoImage
	if l.HasImage() {
		image = f.images(l.ImageURL)
	}
	_, err := fmt.Fprintf(w,
		"%s[%s] %s%s  %s\n    Regulation: %s | Branch: %s | Year: %s\n    Seller: %s | Condition: %s\n    Image: %s\n",
		colors.Blue, l.ID, l.Title, colors.Reset, Price(l.Price),
		orDash(l.Regulation), l.Branch(), orDash(l.BookYear.String()),
		l.SellerRollNo, orDash(l.Condition),
		image)
	if err != nil {
		return err
	}
	if l.Description != "" {
		_, err = fmt.Fprintf(w, "    %s\n", l.Description)
	}
	return err
}

// FormatUser writes the profile header.
func (f *SimpleFormatter) FormatUser(user domain.User, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s%s%s (%s)\n", colors.Blue, orDash(user.Name), colors.Reset, user.RollNumber); err != nil {
		return err
	}
	if user.CreatedAt != "" {
		_, err := fmt.Fprintf(writer, "Member since: %s\n", user.CreatedAt)
		return err
	}
	return nil
}

// Price renders a listing price in rupees.
func Price(v domain.FlexValue) string {
	if v.IsZero() {
		return "₹-"
	}
	return "₹" + v.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

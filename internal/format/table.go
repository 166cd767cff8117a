package format

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/domain"
)

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extractor extracts the value from a listing.
	Extractor func(domain.Listing) string
}

// TableFormatter prints listings in aligned columns.
type TableFormatter struct {
	headerColor string
	columns     []TableColumn
}

// NewTableFormatter creates a new TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headerColor: colors.Blue,
		columns: []TableColumn{
			{Name: "ID", Width: 5, Alignment: "right", Extractor: func(l domain.Listing) string { return l.ID.String() }},
			{Name: "Title", Width: 30, Extractor: func(l domain.Listing) string { return l.Title }},
			{Name: "Branch", Width: 6, Extractor: domain.Listing.Branch},
			{Name: "Reg", Width: 4, Extractor: func(l domain.Listing) string { return l.Regulation }},
			{Name: "Year", Width: 11, Extractor: func(l domain.Listing) string { return l.BookYear.String() }},
			{Name: "Condition", Width: 9, Extractor: func(l domain.Listing) string { return l.Condition }},
			{Name: "Price", Width: 8, Alignment: "right", Extractor: func(l domain.Listing) string { return Price(l.Price) }},
			{Name: "Seller", Width: 10, Extractor: func(l domain.Listing) string { return l.SellerRollNo }},
		},
	}
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatListings writes a header, a separator and one row per listing.
func (f *TableFormatter) FormatListings(listings []domain.Listing, writer io.Writer) error {
	if len(listings) == 0 {
		return nil
	}

	header := make([]string, len(f.columns))
	sep := make([]string, len(f.columns))
	for i, col := range f.columns {
		header[i] = formatString(col.Name, col.Width, "left")
		sep[i] = strings.Repeat("-", col.Width)
	}
	if _, err := fmt.Fprintf(writer, "%s%s%s\n", f.headerColor, strings.Join(header, "  "), colors.Reset); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, strings.Join(sep, "  ")); err != nil {
		return err
	}

	for _, l := range listings {
		cells := make([]string, len(f.columns))
		for i, col := range f.columns {
			cells[i] = formatString(col.Extractor(l), col.Width, col.Alignment)
		}
		if _, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

// FormatUser writes the user as a two-column table.
func (f *TableFormatter) FormatUser(user domain.User, writer io.Writer) error {
	rows := [][2]string{{"Roll number", user.RollNumber}, {"Name", user.Name}, {"Member since", user.CreatedAt}}
	for _, r := range rows {
		if _, err := fmt.Fprintf(writer, "%s  %s\n", formatString(r[0], 12, "left"), r[1]); err != nil {
			return err
		}
	}
	return nil
}

// formatString pads or truncates s to width runes.
func formatString(s string, width int, alignment string) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return truncateString(s, width)
	}

	pad := width - n
	switch alignment {
	case "right":
		return strings.Repeat(" ", pad) + s
	case "center":
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// truncateString shortens s to width runes, ending with "..." when cut.
func truncateString(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

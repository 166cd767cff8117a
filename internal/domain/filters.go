package domain

import (
	"strconv"
	"strings"
)

// Criteria holds the buy page filters. Empty fields do not filter.
type Criteria struct {
	Text       string
	Regulation string
	Branch     string
	Year       string
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Text) == "" && c.Regulation == "" && c.Branch == "" && c.Year == ""
}

// FilterListings returns the listings of snapshot that match every set
// criterion, in their original order. The snapshot is not modified and the
// result never shares its backing array.
func FilterListings(snapshot []Listing, c Criteria) []Listing {
	text := strings.ToLower(strings.TrimSpace(c.Text))
	result := make([]Listing, 0, len(snapshot))
	for _, l := range snapshot {
		if text != "" && !strings.Contains(strings.ToLower(l.Title), text) {
			continue
		}
		if c.Regulation != "" && l.Regulation != c.Regulation {
			continue
		}
		if c.Branch != "" && !MatchesBranch(l, c.Branch) {
			continue
		}
		if c.Year != "" && !MatchesYear(l, c.Year) {
			continue
		}
		result = append(result, l)
	}
	return result
}

// MatchesBranch reports whether the listing's subject or category is branch.
func MatchesBranch(l Listing, branch string) bool {
	return l.Subject == branch || l.Category == branch
}

// MatchesYear reports whether the listing belongs to year. book_year matches
// as the same string or as the number leading year ("2nd Year" is 2); the
// secondary year field matches as a non-empty equal string.
func MatchesYear(l Listing, year string) bool {
	if l.BookYear.IsString(year) {
		return true
	}
	if n, ok := LeadingInt(year); ok && l.BookYear.IsNumber(n) {
		return true
	}
	return year != "" && l.Year.IsString(year)
}

// LeadingInt parses the integer at the start of s after optional whitespace
// and sign, ignoring anything that follows. ok is false when s has no leading
// digits. Long digit runs round to the nearest float64 rather than overflow.
func LeadingInt(s string) (n float64, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// ExcludeSeller drops the listings sold by rollNo. An empty rollNo keeps
// everything.
func ExcludeSeller(snapshot []Listing, rollNo string) []Listing {
	result := make([]Listing, 0, len(snapshot))
	for _, l := range snapshot {
		if rollNo != "" && l.SellerRollNo == rollNo {
			continue
		}
		result = append(result, l)
	}
	return result
}

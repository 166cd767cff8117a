package render

import (
	"strings"
	"testing"

	"github.com/ideal-institute/bookstall/internal/display"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestAnsiColorNumber(t *testing.T) {
	tests := []struct {
		ansi     string
		expected string
	}{
		{"\033[0;34m", "34"},
		{"\033[1;33m", "33"},
		{"\033[0m", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ansiColorNumber(tt.ansi))
		})
	}
}

func TestBlockerShowsRequiredColumns(t *testing.T) {
	state := display.Classify(900, 400)

	out := Blocker(BlockerState{Display: state, Columns: 112, Rows: 25, RequiredColumns: 128})

	assert.Contains(t, out, "Desktop Mode Required")
	assert.Contains(t, out, "at least 128 columns")
	assert.Contains(t, out, "Current: 112 columns (900px, tablet)")
}

func TestBlockerWithoutSizeIsUnplaced(t *testing.T) {
	out := Blocker(BlockerState{Display: display.Classify(0, 0), RequiredColumns: 128})

	assert.True(t, strings.HasPrefix(out, "💻"))
	assert.Contains(t, out, "mobile")
}

func TestCardFallsBackToNoImage(t *testing.T) {
	listing := domain.Listing{
		Title:        "Data Structures",
		Subject:      "CSE",
		Regulation:   "R20",
		BookYear:     domain.StringValue("2nd Year"),
		Condition:    "Used",
		Price:        domain.NumberValue(250),
		SellerRollNo: "21B81A0501",
	}

	out := Card(CardState{Listing: listing, ImageURL: "https://cdn.example/x.jpg", Width: 70})

	assert.Contains(t, out, "Data Structures")
	assert.Contains(t, out, NoImage)
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "₹250")
	assert.NotContains(t, out, "21B81A0501")
}

func TestCardShowsImageAndSeller(t *testing.T) {
	listing := domain.Listing{
		Title:        "Thermodynamics",
		Category:     "MECH",
		ImageURL:     "uploads/t.jpg",
		SellerRollNo: "21B81A0301",
	}

	out := Card(CardState{Listing: listing, ImageURL: "https://cdn/uploads/t.jpg", Width: 80, ShowSeller: true})

	assert.Contains(t, out, "https://cdn/uploads/t.jpg")
	assert.Contains(t, out, "MECH")
	assert.Contains(t, out, "21B81A0301")
	assert.NotContains(t, out, NoImage)
}

func TestFieldCycler(t *testing.T) {
	out := Field(FieldState{Label: "Branch", Value: "", Placeholder: OptionLabel(""), Cycler: true, Focused: true})
	assert.Contains(t, out, "< All >")

	out = Field(FieldState{Label: "Branch", Value: "ECE", Cycler: true, Focused: true})
	assert.Contains(t, out, "< ECE >")
}

func TestOptionLabels(t *testing.T) {
	assert.Equal(t, "All", OptionLabel(""))
	assert.Equal(t, "R23", OptionLabel("R23"))
	assert.Equal(t, "Select", SelectLabel(""))
	assert.Equal(t, "New", SelectLabel("New"))
}

func TestStatus(t *testing.T) {
	assert.Empty(t, Status(StatusState{}))
	assert.Contains(t, Status(StatusState{Text: "boom", Type: errors.MessageTypeError}), "✗ boom")
	assert.Contains(t, Status(StatusState{Text: "done", Type: errors.MessageTypeSuccess}), "✓ done")
	assert.Contains(t, Status(StatusState{Text: "hi", Type: errors.MessageTypeInfo}), "hi")
}

func TestFooterJoinsHelp(t *testing.T) {
	out := Footer(FooterState{Help: []string{"Enter: search", "esc: back"}})
	assert.Contains(t, out, "Enter: search  |  esc: back")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "abcdefghij", truncate("abcdefghij", 3))
}

func TestHeaderIncludesRollNumber(t *testing.T) {
	out := Header("Buy Books", "21B81A0501", 120)
	assert.Contains(t, out, "Buy Books")
	assert.Contains(t, out, "21B81A0501")
}

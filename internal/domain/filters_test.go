package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListings() []Listing {
	return []Listing{
		{ID: NumberValue(1), Title: "Data Structures", Subject: "CSE", Category: "CSE", Regulation: "R20", BookYear: StringValue("Second Year"), SellerRollNo: "22A91A0501"},
		{ID: NumberValue(2), Title: "Signals and Systems", Subject: "ECE", Regulation: "R23", BookYear: NumberValue(2), SellerRollNo: "22A91A0402"},
		{ID: NumberValue(3), Title: "Engineering Drawing", Category: "MECH", Regulation: "R20", Year: StringValue("First Year"), SellerRollNo: "22A91A0303"},
		{ID: NumberValue(4), Title: "Advanced Data Mining", Subject: "CSM", Category: "CSE", Regulation: "R23", BookYear: StringValue("2nd Year"), SellerRollNo: "22A91A0501"},
	}
}

func ids(listings []Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID.String())
	}
	return out
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, Criteria{Text: "   "}.IsEmpty())
	assert.False(t, Criteria{Year: "First Year"}.IsEmpty())
}

func TestFilterListings(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"no criteria keeps everything", Criteria{}, []string{"1", "2", "3", "4"}},
		{"whitespace text is ignored", Criteria{Text: "   "}, []string{"1", "2", "3", "4"}},
		{"text is trimmed and case-insensitive", Criteria{Text: "  data "}, []string{"1", "4"}},
		{"text matches inside the title", Criteria{Text: "MINING"}, []string{"4"}},
		{"regulation is exact", Criteria{Regulation: "R23"}, []string{"2", "4"}},
		{"regulation is case-sensitive", Criteria{Regulation: "r23"}, []string{}},
		{"branch matches subject", Criteria{Branch: "ECE"}, []string{"2"}},
		{"branch matches category", Criteria{Branch: "MECH"}, []string{"3"}},
		{"branch matches subject or category", Criteria{Branch: "CSE"}, []string{"1", "4"}},
		{"year matches string book_year", Criteria{Year: "Second Year"}, []string{"1"}},
		{"year matches numeric book_year by leading integer", Criteria{Year: "2nd Year"}, []string{"2", "4"}},
		{"year matches secondary year field", Criteria{Year: "First Year"}, []string{"3"}},
		{"criteria are ANDed", Criteria{Text: "data", Regulation: "R23", Branch: "CSE"}, []string{"4"}},
		{"no match", Criteria{Text: "quantum"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterListings(sampleListings(), tt.criteria)))
		})
	}
}

func TestFilterListings_DoesNotMutateInput(t *testing.T) {
	snapshot := sampleListings()
	before := sampleListings()

	got := FilterListings(snapshot, Criteria{})
	require.Len(t, got, len(snapshot))
	got[0].Title = "changed"

	assert.Equal(t, before, snapshot)
}

func TestFilterListings_Idempotent(t *testing.T) {
	c := Criteria{Text: "data", Branch: "CSE"}
	once := FilterListings(sampleListings(), c)
	twice := FilterListings(once, c)
	assert.Equal(t, once, twice)
}

func TestFilterListings_MissingFieldsDoNotMatch(t *testing.T) {
	snapshot := []Listing{{ID: StringValue("x")}}

	assert.Empty(t, FilterListings(snapshot, Criteria{Branch: "CSE"}))
	assert.Empty(t, FilterListings(snapshot, Criteria{Year: "First Year"}))
	assert.Empty(t, FilterListings(snapshot, Criteria{Regulation: "R20"}))
	assert.Len(t, FilterListings(snapshot, Criteria{}), 1)
}

func TestFilterListings_EmptySnapshot(t *testing.T) {
	got := FilterListings(nil, Criteria{Text: "data"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchesYear_NonNumericYearSkipsNumericCheck(t *testing.T) {
	l := Listing{BookYear: NumberValue(0)}
	assert.False(t, MatchesYear(l, "First Year"))
}

func TestMatchesYear_DecodedFromJSON(t *testing.T) {
	var listings []Listing
	data := `[{"id":"7","book_name":"Maths","book_year":3},{"id":8,"book_name":"Physics","book_year":"3rd Year"},{"id":9,"book_name":"Chem","book_year":null,"year":"3rd Year"}]`
	require.NoError(t, json.Unmarshal([]byte(data), &listings))

	assert.Equal(t, []string{"7", "8", "9"}, ids(FilterListings(listings, Criteria{Year: "3rd Year"})))
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2nd Year", 2, true},
		{"  42abc", 42, true},
		{"-3", -3, true},
		{"+7 days", 7, true},
		{"First Year", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"12345678901234567890 Year", 12345678901234567890, true},
		{"-99999999999999999999", -1e20, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := LeadingInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesYear_LongDigitRun(t *testing.T) {
	l := Listing{BookYear: NumberValue(12345678901234567890)}

	assert.True(t, MatchesYear(l, "12345678901234567890th Year"))
	assert.False(t, MatchesYear(l, "1234567890123456789th Year"))
}

func TestExcludeSeller(t *testing.T) {
	got := ExcludeSeller(sampleListings(), "22A91A0501")
	assert.Equal(t, []string{"2", "3"}, ids(got))

	assert.Len(t, ExcludeSeller(sampleListings(), ""), 4)
}

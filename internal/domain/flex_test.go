package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlexValue_UnmarshalJSON(t *testing.T) {
	var l Listing
	require.NoError(t, json.Unmarshal([]byte(`{"id":12,"book_name":"DBMS","book_year":"2nd Year","year":null,"price":"199.50"}`), &l))

	assert.Equal(t, FlexNumber, l.ID.Kind())
	assert.Equal(t, "12", l.ID.String())
	assert.True(t, l.BookYear.IsString("2nd Year"))
	assert.True(t, l.Year.IsZero())
	price, ok := l.Price.Float()
	assert.True(t, ok)
	assert.InDelta(t, 199.5, price, 0.001)
}

func TestFlexValue_RejectsObjects(t *testing.T) {
	var v FlexValue
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
}

func TestListing_UnmarshalMismatchedTypes(t *testing.T) {
	var listings []Listing
	data := `[{"id":1,"book_name":"Good","regulation":"R20","subject":"CSE"},
		{"id":{"x":1},"book_name":42,"regulation":23,"subject":true,"category":["ECE"],"book_year":false,"price":{},"seller_roll_no":5}]`
	require.NoError(t, json.Unmarshal([]byte(data), &listings))
	require.Len(t, listings, 2)

	odd := listings[1]
	assert.True(t, odd.ID.IsZero())
	assert.Empty(t, odd.Title)
	assert.Empty(t, odd.Regulation)
	assert.Empty(t, odd.Subject)
	assert.Empty(t, odd.Category)
	assert.True(t, odd.BookYear.IsZero())
	assert.True(t, odd.Price.IsZero())
	assert.Empty(t, odd.SellerRollNo)

	assert.Len(t, FilterListings(listings, Criteria{Regulation: "R20"}), 1)
	assert.Len(t, FilterListings(listings, Criteria{Branch: "CSE"}), 1)
	assert.Len(t, FilterListings(listings, Criteria{Text: "o"}), 1)
}

func TestFlexValue_MarshalKeepsRepresentation(t *testing.T) {
	l := Listing{ID: NumberValue(3), Title: "DBMS", BookYear: StringValue("1st Year"), Price: NumberValue(100)}

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":3`)
	assert.Contains(t, string(data), `"book_year":"1st Year"`)
	assert.NotContains(t, string(data), `"year"`)

	out, err := yaml.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(out), "book_year: 1st Year")
	assert.NotContains(t, string(out), "\nyear:")
}

func TestListing_Branch(t *testing.T) {
	assert.Equal(t, "N/A", Listing{}.Branch())
	assert.Equal(t, "ECE", Listing{Category: "ECE"}.Branch())
}

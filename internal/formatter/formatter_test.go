package formatter

import (
	"bytes"
	"testing"

	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing() domain.Listing {
	return domain.Listing{
		ID:           domain.NumberValue(7),
		Title:        "Signals",
		Subject:      "ECE",
		Regulation:   "R23",
		BookYear:     domain.StringValue("2nd Year"),
		Condition:    "Used",
		Price:        domain.NumberValue(250),
		SellerRollNo: "22A91A0402",
		ImageURL:     "uploads/s.jpg",
	}
}

func TestTemplateEngine_Parse(t *testing.T) {
	engine := NewTemplateEngine()

	tests := []struct {
		name     string
		template string
		want     []string
		wantErr  bool
	}{
		{name: "empty template", template: "", want: []string{}},
		{name: "no variables", template: "Books", want: []string{}},
		{name: "single variable", template: "Title: ${book-name}", want: []string{"book-name"}},
		{name: "duplicates", template: "${id} ${id} ${price}", want: []string{"id", "price"}},
		{name: "unclosed", template: "${book-name", wantErr: true},
		{name: "upper case name", template: "${Title}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Parse(tt.template)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateEngine_Substitute(t *testing.T) {
	engine := NewTemplateEngine()
	ctx := VariableContext{Listing: listing(), Images: func(rel string) string { return "http://host/" + rel }}

	got, err := engine.Substitute("[${id}] ${book-name} ${price} (${year}, ${branch}) ${image}", ctx)
	require.NoError(t, err)
	assert.Equal(t, "[7] Signals ₹250 (2nd Year, N/A) http://host/uploads/s.jpg", got)

	_, err = engine.Substitute("${nope}", ctx)
	assert.ErrorContains(t, err, "unknown variable: nope")
}

func TestResolveFallbacks(t *testing.T) {
	r := NewVariableResolver()
	l := listing()
	l.BookYear = domain.FlexValue{}
	l.Year = domain.NumberValue(2)
	l.ImageURL = ""

	year, err := r.Resolve("year", VariableContext{Listing: l})
	require.NoError(t, err)
	assert.Equal(t, "2", year)

	image, err := r.Resolve("image", VariableContext{Listing: l})
	require.NoError(t, err)
	assert.Equal(t, "No Image", image)

	has, err := r.Resolve("has-image", VariableContext{Listing: l})
	require.NoError(t, err)
	assert.Equal(t, "false", has)

	for _, name := range Variables {
		_, err := r.Resolve(name, VariableContext{Listing: l})
		assert.NoError(t, err, name)
	}
}

func TestPresetRegistry(t *testing.T) {
	registry := NewPresetRegistry()

	names := []string{}
	for _, p := range registry.List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"compact", "detailed", "sellers", "tsv"}, names)

	_, err := registry.Get("missing")
	assert.Error(t, err)

	assert.Error(t, registry.Register(Preset{Template: "x"}))
	assert.Error(t, registry.Register(Preset{Name: "x"}))
	require.NoError(t, registry.Register(Preset{Name: "compact", Template: "${id}"}))
	p, err := registry.Get("compact")
	require.NoError(t, err)
	assert.Equal(t, "${id}", p.Template)
	assert.Len(t, registry.List(), 4)
}

func TestResolveAndWriteListings(t *testing.T) {
	registry := NewPresetRegistry()
	assert.Equal(t, "[${id}] ${book-name} ${price}", Resolve(registry, "compact"))
	assert.Equal(t, "${seller}", Resolve(registry, "${seller}"))

	var buf bytes.Buffer
	second := listing()
	second.ID = domain.StringValue("b-2")
	second.Title = "Circuits"
	require.NoError(t, WriteListings(NewTemplateEngine(), Resolve(registry, "compact"), []domain.Listing{listing(), second}, nil, &buf))
	assert.Equal(t, "[7] Signals ₹250\n[b-2] Circuits ₹250\n", buf.String())
}

package domain

// Catalog holds the listing snapshot of a buy page and the subset currently
// shown. The zero value is an empty catalog.
type Catalog struct {
	original []Listing
	visible  []Listing
	criteria Criteria
}

// NewCatalog returns a catalog loaded with snapshot.
func NewCatalog(snapshot []Listing) *Catalog {
	c := &Catalog{}
	c.Load(snapshot)
	return c
}

// Load caches snapshot as the original listings and shows all of them.
func (c *Catalog) Load(snapshot []Listing) {
	c.original = snapshot
	c.visible = snapshot
	c.criteria = Criteria{}
}

// Search replaces the criteria and recomputes the visible listings from the
// original snapshot.
func (c *Catalog) Search(criteria Criteria) []Listing {
	c.criteria = criteria
	c.visible = FilterListings(c.original, criteria)
	return c.visible
}

// Reset clears the criteria and shows the cached original snapshot again.
func (c *Catalog) Reset() []Listing {
	c.criteria = Criteria{}
	c.visible = c.original
	return c.visible
}

// Visible returns the listings currently shown.
func (c *Catalog) Visible() []Listing { return c.visible }

// Original returns the cached snapshot.
func (c *Catalog) Original() []Listing { return c.original }

// Criteria returns the criteria of the last search.
func (c *Catalog) Criteria() Criteria { return c.criteria }

// Len returns the number of visible listings.
func (c *Catalog) Len() int { return len(c.visible) }

package catalog

// Catalog is the fixed, read-only product set. It is built once at
// startup and never mutated, so it needs no locking.
type Catalog struct {
	products []Product
	byID     map[int]int
}

const defaultRelatedLimit = 3

func New() *Catalog {
	return newCatalog(seedProducts())
}

func newCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[int]int, len(products)),
	}
	for i := range products {
		c.byID[products[i].ID] = i
	}
	return c
}

// All returns the products in declaration order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Genres() []string {
	out := make([]string, len(genres))
	copy(out, genres)
	return out
}

// ByID returns the product with the given id. Absence is a normal
// outcome, not an error.
func (c *Catalog) ByID(id int) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Related returns up to limit products sharing p's genre, excluding p
// itself, in declaration order. A non-positive limit means the default
// of 3.
func (c *Catalog) Related(p Product, limit int) []Product {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	out := make([]Product, 0, limit)
	for _, cand := range c.products {
		if cand.Genre != p.Genre || cand.ID == p.ID {
			continue
		}
		out = append(out, cand)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Bundle returns the cross-sell pairing for p: the first other
// same-genre product, then the first different-genre product. Same-genre
// always comes first; the result holds at most two entries.
func (c *Catalog) Bundle(p Product) []Product {
	out := make([]Product, 0, 2)

	for _, cand := range c.products {
		if cand.Genre == p.Genre && cand.ID != p.ID {
			out = append(out, cand)
			break
		}
	}
	for _, cand := range c.products {
		if cand.Genre != p.Genre {
			out = append(out, cand)
			break
		}
	}
	return out
}

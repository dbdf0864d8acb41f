package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortName      SortKey = "name"
)

// Quick-filter tags from the shop page. At most one is active per query.
const (
	TagNew         = "new"
	TagBestSellers = "bestsellers"
	TagSale        = "sale"
)

// Query is one set of shop-page filter and sort parameters. The zero
// value selects everything in declaration order. MaxPriceCents of zero
// means unbounded; unknown Tag and Sort values are ignored.
type Query struct {
	Search        string
	Tag           string
	Genre         string
	MinPriceCents int64
	MaxPriceCents int64
	Sort          SortKey
}

// Apply runs the filter/sort pipeline over products and returns a new
// slice. Sorting is stable: products with equal keys keep their
// declaration order.
func (q Query) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.matches(p) {
			out = append(out, p)
		}
	}

	q.sortInPlace(out)
	return out
}

func (q Query) matches(p Product) bool {
	if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" {
		if !strings.Contains(strings.ToLower(p.Title), s) &&
			!strings.Contains(strings.ToLower(p.Artist), s) &&
			!strings.Contains(strings.ToLower(p.Genre), s) {
			return false
		}
	}

	switch q.Tag {
	case TagNew:
		if !p.IsNew {
			return false
		}
	case TagBestSellers:
		if !p.IsBestSeller {
			return false
		}
	case TagSale:
		if !p.IsSale {
			return false
		}
	}

	if q.Genre != "" && q.Genre != GenreAll && p.Genre != q.Genre {
		return false
	}

	if p.PriceCents < q.MinPriceCents {
		return false
	}
	if q.MaxPriceCents > 0 && p.PriceCents > q.MaxPriceCents {
		return false
	}

	return true
}

func (q Query) sortInPlace(ps []Product) {
	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].PriceCents < ps[j].PriceCents })
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].PriceCents > ps[j].PriceCents })
	case SortNewest:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Year > ps[j].Year })
	case SortName:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Title < ps[j].Title })
	}
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestQuery_ZeroValueSelectsEverything(t *testing.T) {
	all := New().All()

	got := Query{}.Apply(all)
	assert.Equal(t, ids(all), ids(got), "default preserves declaration order")
}

func TestQuery_GenreFilter(t *testing.T) {
	all := New().All()

	got := Query{Genre: "Jazz"}.Apply(all)
	assert.Equal(t, []int{2, 8}, ids(got))

	// the "All" selector disables the filter
	got = Query{Genre: GenreAll}.Apply(all)
	assert.Len(t, got, len(all))
}

func TestQuery_GenreFilterIndependentOfSort(t *testing.T) {
	all := New().All()

	for _, sort := range []SortKey{SortDefault, SortPriceLow, SortPriceHigh, SortNewest, SortName} {
		got := Query{Genre: "Jazz", Sort: sort}.Apply(all)
		assert.Len(t, got, 2, "sort %q", sort)
	}
}

func TestQuery_Search(t *testing.T) {
	all := New().All()

	// artist match, case-insensitive
	got := Query{Search: "LUNA"}.Apply(all)
	assert.Equal(t, []int{2}, ids(got))

	// genre text also matches
	got = Query{Search: "jazz"}.Apply(all)
	assert.Equal(t, []int{2, 8}, ids(got))

	// title substring
	got = Query{Search: "cosmic"}.Apply(all)
	assert.Equal(t, []int{1}, ids(got))

	got = Query{Search: "no such record"}.Apply(all)
	assert.Empty(t, got)
}

func TestQuery_TagFilters(t *testing.T) {
	all := New().All()

	assert.Equal(t, []int{1, 3, 6, 10, 12}, ids(Query{Tag: TagNew}.Apply(all)))
	assert.Equal(t, []int{2, 4, 8, 11}, ids(Query{Tag: TagBestSellers}.Apply(all)))
	assert.Equal(t, []int{5, 7, 9}, ids(Query{Tag: TagSale}.Apply(all)))

	// unknown tag selects everything
	assert.Len(t, Query{Tag: "weird"}.Apply(all), len(all))
}

func TestQuery_PriceRangeInclusive(t *testing.T) {
	all := New().All()

	got := Query{MinPriceCents: 2299, MaxPriceCents: 2799}.Apply(all)
	assert.Equal(t, []int{3, 5, 7, 11}, ids(got))

	// zero max means unbounded
	got = Query{MinPriceCents: 3499}.Apply(all)
	assert.Equal(t, []int{2, 12}, ids(got))
}

func TestQuery_SortPrice(t *testing.T) {
	ps := []Product{
		{ID: 1, PriceCents: 3499},
		{ID: 2, PriceCents: 2999},
		{ID: 3, PriceCents: 2799},
	}

	low := Query{Sort: SortPriceLow}.Apply(ps)
	assert.Equal(t, []int{3, 2, 1}, ids(low))

	high := Query{Sort: SortPriceHigh}.Apply(ps)
	assert.Equal(t, []int{1, 2, 3}, ids(high))
}

func TestQuery_SortIsStable(t *testing.T) {
	ps := []Product{
		{ID: 1, PriceCents: 2999, Year: 2024},
		{ID: 2, PriceCents: 1999, Year: 2024},
		{ID: 3, PriceCents: 2999, Year: 2023},
		{ID: 4, PriceCents: 2999, Year: 2024},
	}

	low := Query{Sort: SortPriceLow}.Apply(ps)
	assert.Equal(t, []int{2, 1, 3, 4}, ids(low), "equal prices keep declaration order")

	newest := Query{Sort: SortNewest}.Apply(ps)
	assert.Equal(t, []int{1, 2, 4, 3}, ids(newest), "equal years keep declaration order")
}

func TestQuery_SortNewest(t *testing.T) {
	got := Query{Sort: SortNewest}.Apply(New().All())
	assert.Equal(t, []int{3, 6, 8, 10, 12, 1, 4, 5, 7, 11, 2, 9}, ids(got))
}

func TestQuery_SortName(t *testing.T) {
	got := Query{Sort: SortName}.Apply(New().All())

	require.Len(t, got, 12)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Title, got[i].Title)
	}
}

func TestQuery_ApplyDoesNotMutateInput(t *testing.T) {
	all := New().All()
	want := ids(all)

	_ = Query{Sort: SortPriceLow}.Apply(all)
	assert.Equal(t, want, ids(all))
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID_RoundTripsEveryProduct(t *testing.T) {
	c := New()

	for _, want := range c.All() {
		got, ok := c.ByID(want.ID)
		require.True(t, ok, "product %d", want.ID)
		assert.Equal(t, want, got)
	}
}

func TestByID_UnknownIDIsNotFound(t *testing.T) {
	c := New()

	_, ok := c.ByID(999)
	assert.False(t, ok)

	_, ok = c.ByID(-1)
	assert.False(t, ok)
}

func TestRelated(t *testing.T) {
	c := New()

	p, ok := c.ByID(1) // Electronic
	require.True(t, ok)

	related := c.Related(p, 3)
	require.NotEmpty(t, related)
	assert.LessOrEqual(t, len(related), 3)
	for _, r := range related {
		assert.NotEqual(t, p.ID, r.ID, "related must not include the product itself")
		assert.Equal(t, p.Genre, r.Genre)
	}

	// declaration order: Ocean Waves (7) is the only other Electronic record
	assert.Equal(t, 7, related[0].ID)
}

func TestRelated_LimitAndDefault(t *testing.T) {
	c := New()

	p, ok := c.ByID(2) // Jazz: one other Jazz record exists
	require.True(t, ok)

	assert.Len(t, c.Related(p, 1), 1)
	// fewer matches than the limit is valid
	assert.Len(t, c.Related(p, 5), 1)
	// non-positive limit falls back to the default of 3
	assert.Len(t, c.Related(p, 0), 1)
}

func TestBundle_SameGenreFirst(t *testing.T) {
	c := New()

	p, ok := c.ByID(2) // Jazz
	require.True(t, ok)

	bundle := c.Bundle(p)
	require.Len(t, bundle, 2)
	assert.Equal(t, p.Genre, bundle[0].Genre, "same-genre candidate comes first")
	assert.Equal(t, 8, bundle[0].ID)
	assert.NotEqual(t, p.Genre, bundle[1].Genre)
	assert.Equal(t, 1, bundle[1].ID)
}

func TestBundle_NeverExceedsTwo(t *testing.T) {
	c := New()

	for _, p := range c.All() {
		bundle := c.Bundle(p)
		assert.LessOrEqual(t, len(bundle), 2)
		for _, b := range bundle {
			assert.NotEqual(t, p.ID, b.ID)
		}
	}
}

func TestGenres(t *testing.T) {
	c := New()

	got := c.Genres()
	assert.Equal(t, []string{"All", "Electronic", "Jazz", "Hip Hop", "Synthwave", "Folk", "Rock"}, got)
}

func TestGenerateReviews_Deterministic(t *testing.T) {
	a := generateReviews(1)
	b := generateReviews(1)
	assert.Equal(t, a, b)

	// count = 2 + id%3
	assert.Len(t, generateReviews(1), 3)
	assert.Len(t, generateReviews(2), 4)
	assert.Len(t, generateReviews(3), 2)
}

func TestGenerateReviews_Shape(t *testing.T) {
	reviews := generateReviews(1)

	for i, r := range reviews {
		assert.Equal(t, i+1, r.ID, "review ids are sequence-local")
		assert.Contains(t, []int{4, 5}, r.Rating)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Comment)
		assert.NotEmpty(t, r.Date)
	}
}

func TestCatalog_DiscountedRecordsHaveHigherOriginalPrice(t *testing.T) {
	for _, p := range New().All() {
		if p.IsSale {
			assert.Greater(t, p.OriginalPriceCents, p.PriceCents, "product %d", p.ID)
		}
	}
}

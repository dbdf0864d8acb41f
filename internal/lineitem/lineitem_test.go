package lineitem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id int, priceCents int64) Item {
	return Item{ProductID: id, Title: "title", Artist: "artist", PriceCents: priceCents}
}

func TestAdd_DuplicateBumpsQuantity(t *testing.T) {
	c := NewCollection(true, nil)

	c.Add(item(1, 2999))
	c.Add(item(1, 2999))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_DuplicateKeepsSnapshot(t *testing.T) {
	c := NewCollection(true, nil)

	c.Add(Item{ProductID: 1, Title: "original", PriceCents: 1000})
	c.Add(Item{ProductID: 1, Title: "changed", PriceCents: 9999})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "original", items[0].Title)
	assert.Equal(t, int64(1000), items[0].PriceCents)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAdd_UntrackedDuplicateIsNoop(t *testing.T) {
	c := NewCollection(false, nil)

	c.Add(item(1, 2999))
	c.Add(item(1, 2999))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Items()[0].Quantity)
}

func TestAdd_InsertStartsAtQuantityOne(t *testing.T) {
	c := NewCollection(true, nil)

	it := item(1, 2999)
	it.Quantity = 7
	c.Add(it)

	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	c := NewCollection(true, nil)
	c.Add(item(1, 1000))
	c.Add(item(2, 500))

	c.SetQuantity(1, 4)
	assert.Equal(t, 4, c.Items()[0].Quantity)

	// zero and below remove the entry entirely
	c.SetQuantity(1, 0)
	require.Equal(t, 1, c.Len())
	assert.False(t, c.Contains(1))

	c.SetQuantity(2, -3)
	assert.Equal(t, 0, c.Len())

	// absent id is a no-op
	c.SetQuantity(42, 5)
	assert.Equal(t, 0, c.Len())
}

func TestRemove(t *testing.T) {
	c := NewCollection(true, nil)
	c.Add(item(1, 1000))
	c.Add(item(2, 500))

	c.Remove(1)
	require.Equal(t, 1, c.Len())
	assert.True(t, c.Contains(2))

	// absent id is a no-op
	c.Remove(99)
	assert.Equal(t, 1, c.Len())
}

func TestTotalCents(t *testing.T) {
	c := NewCollection(true, nil)
	assert.Equal(t, int64(0), c.TotalCents())

	c.Add(item(1, 1000))
	c.Add(item(1, 1000))
	c.Add(item(2, 500))
	c.SetQuantity(2, 3)

	// 10.00 x 2 + 5.00 x 3 = 35.00
	assert.Equal(t, int64(3500), c.TotalCents())
}

func TestClear(t *testing.T) {
	c := NewCollection(true, nil)
	c.Add(item(1, 1000))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.TotalCents())

	// clearing an empty collection is a no-op
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestNewCollection_NormalizesPersistedItems(t *testing.T) {
	seeded := []Item{
		{ProductID: 1, PriceCents: 1000, Quantity: 3},
		{ProductID: 1, PriceCents: 9999, Quantity: 5}, // duplicate, dropped
		{ProductID: 2, PriceCents: 500, Quantity: 0},  // normalized up to 1
	}

	c := NewCollection(true, seeded)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(1000), items[0].PriceCents)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestItems_PreservesInsertionOrderAndCopies(t *testing.T) {
	c := NewCollection(true, nil)
	c.Add(item(3, 100))
	c.Add(item(1, 200))
	c.Add(item(2, 300))

	items := c.Items()
	require.Equal(t, []int{3, 1, 2}, []int{items[0].ProductID, items[1].ProductID, items[2].ProductID})

	items[0].Quantity = 99
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

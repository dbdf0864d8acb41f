// Package lineitem holds the keyed line-item collection shared by the
// cart and the wishlist, plus its persistence stores. The two consumers
// differ only in whether quantity is tracked.
package lineitem

// Item is one denormalized cart or wishlist row. Title, artist, price
// and image are a snapshot captured when the item was added and are
// never refreshed from the catalog afterwards. Quantity is zero in
// collections that do not track it.
type Item struct {
	ProductID  int    `json:"product_id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	PriceCents int64  `json:"price_cents"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity,omitempty"`
}

// Collection is an ordered set of line items unique by product id.
// With quantity tracking on, re-adding an id bumps its quantity; with
// tracking off, membership is boolean and re-adds are no-ops.
type Collection struct {
	trackQuantity bool
	items         []Item
}

// NewCollection wraps previously persisted items. Duplicate ids keep
// the first occurrence; quantities are normalized to at least 1 when
// tracked and to 0 when not.
func NewCollection(trackQuantity bool, items []Item) *Collection {
	c := &Collection{
		trackQuantity: trackQuantity,
		items:         make([]Item, 0, len(items)),
	}

	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ProductID]; dup {
			continue
		}
		seen[it.ProductID] = struct{}{}
		c.items = append(c.items, normalize(trackQuantity, it))
	}
	return c
}

func normalize(trackQuantity bool, it Item) Item {
	if !trackQuantity {
		it.Quantity = 0
	} else if it.Quantity < 1 {
		it.Quantity = 1
	}
	return it
}

// Add inserts the item, or, when its id is already present, bumps the
// existing entry's quantity and leaves the stored snapshot untouched.
// A fresh insert always starts at quantity 1 regardless of the input.
func (c *Collection) Add(it Item) {
	if i := c.index(it.ProductID); i >= 0 {
		if c.trackQuantity {
			c.items[i].Quantity++
		}
		return
	}

	it.Quantity = 1
	c.items = append(c.items, normalize(c.trackQuantity, it))
}

// Remove deletes the entry if present; an absent id is a no-op.
func (c *Collection) Remove(productID int) {
	if i := c.index(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// SetQuantity sets the entry's quantity. A quantity of zero or less
// removes the entry entirely: it is never persisted. No-op on absent
// ids and on collections without quantity tracking.
func (c *Collection) SetQuantity(productID, quantity int) {
	if !c.trackQuantity {
		return
	}

	i := c.index(productID)
	if i < 0 {
		return
	}

	if quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
	c.items[i].Quantity = quantity
}

func (c *Collection) Contains(productID int) bool {
	return c.index(productID) >= 0
}

func (c *Collection) Len() int { return len(c.items) }

// Items returns a copy in insertion order.
func (c *Collection) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalCents recomputes the price sum on every call. Untracked entries
// count once.
func (c *Collection) TotalCents() int64 {
	var total int64
	for _, it := range c.items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		total += it.PriceCents * int64(qty)
	}
	return total
}

func (c *Collection) Clear() {
	c.items = c.items[:0]
}

func (c *Collection) index(productID int) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

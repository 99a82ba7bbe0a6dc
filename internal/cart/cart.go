package cart

import (
	"math"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// pulseDuration is how long the attention pulse stays raised after an item
// lands in the cart.
const pulseDuration = time.Second

// LineItem is one cart entry: a priced, possibly customized instance of a
// catalog item. Chosen add-ons are baked into Name, so (ItemID, Name) is the
// merge key for identical selections.
type LineItem struct {
	ItemID      string          `json:"item_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category,omitempty"`
	Quantity    int             `json:"quantity"`
}

// Subtotal is price × quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart holds the selected line items in insertion order.
type Cart struct {
	mu      sync.Mutex
	items   []LineItem
	pulse   bool
	timer   *time.Timer
	onPulse func()
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// OnPulse registers a callback fired whenever the attention pulse rises.
func (c *Cart) OnPulse(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPulse = fn
}

// AddItem merges li into an existing entry with the same (ItemID, Name) by
// summing quantities, or appends it as a new entry. Quantities below 1 are
// clamped to 1. The attention pulse rises and auto-resets shortly after.
func (c *Cart) AddItem(li LineItem) {
	if li.Quantity < 1 {
		li.Quantity = 1
	}

	c.mu.Lock()
	merged := false
	for i := range c.items {
		if c.items[i].ItemID == li.ItemID && c.items[i].Name == li.Name {
			c.items[i].Quantity += li.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, li)
	}

	c.pulse = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(pulseDuration, func() {
		c.mu.Lock()
		c.pulse = false
		c.mu.Unlock()
	})
	notify := c.onPulse
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// UpdateQuantity adjusts the quantity of the entry matching (id, name) by
// delta, flooring to an integer and never dropping below 1. Removal requires
// Remove. Unknown entries are a no-op.
func (c *Cart) UpdateQuantity(id, name string, delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ItemID == id && c.items[i].Name == name {
			q := int(math.Floor(float64(c.items[i].Quantity) + delta))
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

// Remove deletes every entry matching (id, name).
func (c *Cart) Remove(id, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, li := range c.items {
		if li.ItemID == id && li.Name == name {
			continue
		}
		kept = append(kept, li)
	}
	c.items = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot of the cart in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total is the sum of price × quantity over the current entries, recomputed
// on every call.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Pulsing reports whether the attention pulse is currently raised.
func (c *Cart) Pulsing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pulse
}

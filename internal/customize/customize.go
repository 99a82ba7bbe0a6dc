// Package customize builds a priced, named line item out of a catalog item,
// a working quantity and a set of optional add-ons. The add-on catalog is
// fixed and never persisted.
package customize

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/acai-real/storefront/internal/cart"
	"github.com/acai-real/storefront/internal/catalog"
)

// ErrUnavailable is returned when confirming a selection over an item that
// is not currently for sale.
var ErrUnavailable = errors.New("customize: item is not available")

// AddOn is one optional extra with a fixed price.
type AddOn struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// AddOns returns the fixed add-on catalog.
func AddOns() []AddOn {
	return []AddOn{
		{Name: "Nutella Original", Price: decimal.NewFromInt(5)},
		{Name: "Leite Ninho", Price: decimal.NewFromFloat(3.5)},
		{Name: "Morangos Frescos", Price: decimal.NewFromInt(4)},
		{Name: "Paçoca Crocante", Price: decimal.NewFromFloat(2.5)},
	}
}

func addOnPrice(name string) (decimal.Decimal, bool) {
	for _, a := range AddOns() {
		if a.Name == name {
			return a.Price, true
		}
	}
	return decimal.Zero, false
}

// Selection is an in-progress customization of one catalog item. Chosen
// add-on names keep their toggle insertion order; that order flows into the
// generated line-item name and therefore into the cart merge key.
type Selection struct {
	item     catalog.Item
	quantity int
	addOns   []string
}

// NewSelection starts a selection over item with quantity 1.
func NewSelection(item catalog.Item) *Selection {
	return &Selection{item: item, quantity: 1}
}

// SetQuantity floors q to an integer and clamps it to a minimum of 1 —
// the same rule the cart applies to quantity deltas.
func (s *Selection) SetQuantity(q float64) {
	n := int(math.Floor(q))
	if n < 1 {
		n = 1
	}
	s.quantity = n
}

// Quantity returns the working quantity.
func (s *Selection) Quantity() int {
	return s.quantity
}

// Toggle flips the add-on with the given name in or out of the selection.
// Names outside the fixed add-on catalog are ignored.
func (s *Selection) Toggle(name string) {
	if _, ok := addOnPrice(name); !ok {
		return
	}
	for i, n := range s.addOns {
		if n == name {
			s.addOns = append(s.addOns[:i], s.addOns[i+1:]...)
			return
		}
	}
	s.addOns = append(s.addOns, name)
}

// AddOnNames returns the chosen add-ons in toggle insertion order.
func (s *Selection) AddOnNames() []string {
	out := make([]string, len(s.addOns))
	copy(out, s.addOns)
	return out
}

// UnitPrice is the base price plus the sum of the chosen add-on prices.
func (s *Selection) UnitPrice() decimal.Decimal {
	price := s.item.Price
	for _, n := range s.addOns {
		if p, ok := addOnPrice(n); ok {
			price = price.Add(p)
		}
	}
	return price
}

// Total is the unit price times the working quantity.
func (s *Selection) Total() decimal.Decimal {
	return s.UnitPrice().Mul(decimal.NewFromInt(int64(s.quantity)))
}

// DisplayName is the base name unchanged, or with the chosen add-ons
// appended as "Base (+A, B)".
func (s *Selection) DisplayName() string {
	if len(s.addOns) == 0 {
		return s.item.Name
	}
	return fmt.Sprintf("%s (+%s)", s.item.Name, strings.Join(s.addOns, ", "))
}

// Confirm produces the line item for the current selection. It fails when
// the underlying catalog item is unavailable.
func (s *Selection) Confirm() (cart.LineItem, error) {
	if !s.item.Available {
		return cart.LineItem{}, ErrUnavailable
	}
	return cart.LineItem{
		ItemID:      s.item.ID,
		Name:        s.DisplayName(),
		Description: s.item.Description,
		Price:       s.UnitPrice(),
		Image:       s.item.Image,
		Category:    s.item.Category,
		Quantity:    s.quantity,
	}, nil
}

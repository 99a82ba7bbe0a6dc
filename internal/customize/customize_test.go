package customize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acai-real/storefront/internal/catalog"
	"github.com/acai-real/storefront/internal/enum"
)

func baseItem() catalog.Item {
	return catalog.Item{
		ID:        "1",
		Name:      "Clássico 300ml",
		Price:     decimal.NewFromInt(18),
		Category:  enum.CategoryClassic,
		Available: true,
	}
}

func TestDisplayNameWithoutAddOns(t *testing.T) {
	s := NewSelection(baseItem())
	assert.Equal(t, "Clássico 300ml", s.DisplayName())
}

func TestDisplayNameAppendsAddOnsInToggleOrder(t *testing.T) {
	s := NewSelection(baseItem())
	s.Toggle("Nutella Original")
	s.Toggle("Leite Ninho")

	assert.Equal(t, "Clássico 300ml (+Nutella Original, Leite Ninho)", s.DisplayName())

	// Deselecting the first keeps the second
	s.Toggle("Nutella Original")
	assert.Equal(t, "Clássico 300ml (+Leite Ninho)", s.DisplayName())
}

func TestToggleIgnoresUnknownAddOns(t *testing.T) {
	s := NewSelection(baseItem())
	s.Toggle("Caviar")

	assert.Empty(t, s.AddOnNames())
	assert.Equal(t, "Clássico 300ml", s.DisplayName())
}

func TestUnitPriceAddsAddOnPrices(t *testing.T) {
	s := NewSelection(baseItem())
	s.Toggle("Nutella Original") // 5.00
	s.Toggle("Leite Ninho")      // 3.50

	assert.True(t, s.UnitPrice().Equal(decimal.NewFromFloat(26.5)), "got %s", s.UnitPrice())
}

func TestTotalMultipliesByFlooredQuantity(t *testing.T) {
	s := NewSelection(baseItem())
	s.Toggle("Morangos Frescos") // 4.00
	s.SetQuantity(2.9)

	// (18 + 4) × 2
	assert.True(t, s.Total().Equal(decimal.NewFromInt(44)), "got %s", s.Total())
}

func TestSetQuantityClampsToMinimumOne(t *testing.T) {
	s := NewSelection(baseItem())
	s.SetQuantity(-3)
	assert.Equal(t, 1, s.Quantity())

	s.SetQuantity(0.4)
	assert.Equal(t, 1, s.Quantity())
}

func TestConfirmProducesMergedKeyLineItem(t *testing.T) {
	s := NewSelection(baseItem())
	s.Toggle("Nutella Original")
	s.SetQuantity(3)

	li, err := s.Confirm()
	require.NoError(t, err)

	assert.Equal(t, "1", li.ItemID)
	assert.Equal(t, "Clássico 300ml (+Nutella Original)", li.Name)
	assert.Equal(t, 3, li.Quantity)
	assert.True(t, li.Price.Equal(decimal.NewFromInt(23)), "got %s", li.Price)
}

func TestConfirmSameSelectionTwiceProducesSameName(t *testing.T) {
	a := NewSelection(baseItem())
	a.Toggle("Nutella Original")
	a.Toggle("Leite Ninho")

	b := NewSelection(baseItem())
	b.Toggle("Nutella Original")
	b.Toggle("Leite Ninho")

	la, err := a.Confirm()
	require.NoError(t, err)
	lb, err := b.Confirm()
	require.NoError(t, err)

	// Identical selections merge in the cart via (id, name)
	assert.Equal(t, la.Name, lb.Name)
}

func TestConfirmRejectsUnavailableItem(t *testing.T) {
	item := baseItem()
	item.Available = false

	_, err := NewSelection(item).Confirm()
	assert.ErrorIs(t, err, ErrUnavailable)
}

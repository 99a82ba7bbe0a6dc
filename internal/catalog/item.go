package catalog

import "github.com/shopspring/decimal"

// Item is a sellable catalog entry. The store is the sole owner and sole
// mutator; the cart always works on copies, so later catalog edits never
// reach line items that were already added.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	Popular     bool            `json:"popular,omitempty"`
	Tag         string          `json:"tag,omitempty"`
}

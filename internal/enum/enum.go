package enum

// ── Catalog categories (closed set, mirrors the menu layout) ──

const (
	CategoryClassic = "Classic"
	CategoryPremium = "Premium"
	CategoryCombos  = "Combos"
	CategorySides   = "Acompanhamentos"
)

// Categories lists every valid catalog category in menu order.
var Categories = []string{
	CategoryClassic,
	CategoryPremium,
	CategoryCombos,
	CategorySides,
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ── Payment methods (closed set; Pix is the default) ──

const (
	PaymentMethodPix  = "Pix"
	PaymentMethodCard = "Card"
	PaymentMethodCash = "Cash"
)

// PaymentMethods lists every accepted payment method, default first.
var PaymentMethods = []string{
	PaymentMethodPix,
	PaymentMethodCard,
	PaymentMethodCash,
}

// IsValidPaymentMethod reports whether m is one of the accepted methods.
func IsValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

// Package handoff turns the cart and delivery details into a pre-filled
// WhatsApp message. Formatting is pure; dispatching is an injected,
// fire-and-forget capability with no delivery confirmation.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/acai-real/storefront/internal/cart"
	"github.com/acai-real/storefront/internal/enum"
)

// CheckoutForm carries the delivery details collected before handoff.
// Name, address and neighborhood are required; the phone is optional.
type CheckoutForm struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address" validate:"required"`
	Neighborhood  string `json:"neighborhood" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=Pix Card Cash"`
}

var validate = validator.New()

// Validate checks the required fields and defaults the payment method to
// the first accepted one when empty.
func (f *CheckoutForm) Validate() error {
	if f.PaymentMethod == "" {
		f.PaymentMethod = enum.PaymentMethodPix
	}
	return validate.Struct(f)
}

// FormatMessage renders the deterministic order template: customer block,
// one line per cart entry with quantity, name and two-decimal subtotal, the
// grand total, the delivery address and the payment method.
func FormatMessage(storeName string, form CheckoutForm, items []cart.LineItem, total decimal.Decimal) string {
	lines := make([]string, len(items))
	for i, li := range items {
		lines[i] = fmt.Sprintf("• *%dx %s* - R$ %s", li.Quantity, li.Name, li.Subtotal().StringFixed(2))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*NOVO PEDIDO - %s*\n\n", strings.ToUpper(storeName))
	fmt.Fprintf(&b, "*CLIENTE:* %s\n", form.Name)
	if form.Phone != "" {
		fmt.Fprintf(&b, "*CONTATO:* %s\n", form.Phone)
	}
	fmt.Fprintf(&b, "\n*ITENS SELECIONADOS:*\n%s\n\n", strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "*VALOR TOTAL: R$ %s*\n\n", total.StringFixed(2))
	fmt.Fprintf(&b, "*ONDE ENTREGAR:* %s, %s\n", form.Address, form.Neighborhood)
	fmt.Fprintf(&b, "*FORMA DE PAGAMENTO:* %s\n\n", form.PaymentMethod)
	b.WriteString("Aguardo a confirmação para começar a preparar!")
	return b.String()
}

// Link builds the deep link that opens WhatsApp addressed to the shop's
// number with the message pre-filled.
func Link(number, message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + number,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}
	return u.String()
}

// Dispatcher hands the composed link to the outside world. There is no
// acknowledgment: once dispatched, the order is the merchant's problem.
type Dispatcher interface {
	Dispatch(link string) error
}

// LogDispatcher records the link; the HTTP response carries it to the
// client, which actually opens it.
type LogDispatcher struct {
	Log zerolog.Logger
}

// Dispatch logs the outbound link.
func (d LogDispatcher) Dispatch(link string) error {
	d.Log.Info().Str("link", link).Msg("order handoff dispatched")
	return nil
}

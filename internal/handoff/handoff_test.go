package handoff

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acai-real/storefront/internal/cart"
	"github.com/acai-real/storefront/internal/enum"
)

func validForm() CheckoutForm {
	return CheckoutForm{
		Name:         "Maria",
		Address:      "Rua das Flores, 10",
		Neighborhood: "Centro",
	}
}

func sampleItems() []cart.LineItem {
	return []cart.LineItem{
		{ItemID: "1", Name: "Clássico 300ml", Price: decimal.NewFromInt(18), Quantity: 2},
		{ItemID: "2", Name: "Vício Púrpura 500ml (+Nutella Original)", Price: decimal.NewFromInt(31), Quantity: 1},
	}
}

func TestValidateRequiresNameAddressNeighborhood(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*CheckoutForm)
	}{
		{"name", func(f *CheckoutForm) { f.Name = "" }},
		{"address", func(f *CheckoutForm) { f.Address = "" }},
		{"neighborhood", func(f *CheckoutForm) { f.Neighborhood = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			assert.Error(t, form.Validate())
		})
	}
}

func TestValidateDefaultsPaymentMethodToPix(t *testing.T) {
	form := validForm()
	require.NoError(t, form.Validate())
	assert.Equal(t, enum.PaymentMethodPix, form.PaymentMethod)
}

func TestValidateRejectsUnknownPaymentMethod(t *testing.T) {
	form := validForm()
	form.PaymentMethod = "Cheque"
	assert.Error(t, form.Validate())
}

func TestFormatMessageContainsEveryLineAndTotals(t *testing.T) {
	form := validForm()
	require.NoError(t, form.Validate())
	items := sampleItems()
	total := decimal.NewFromInt(67) // 2×18 + 1×31

	msg := FormatMessage("Açaí Real", form, items, total)

	assert.Contains(t, msg, "NOVO PEDIDO - AÇAÍ REAL")
	assert.Contains(t, msg, "*CLIENTE:* Maria")
	assert.Contains(t, msg, "*2x Clássico 300ml* - R$ 36.00")
	assert.Contains(t, msg, "*1x Vício Púrpura 500ml (+Nutella Original)* - R$ 31.00")
	assert.Contains(t, msg, "*VALOR TOTAL: R$ 67.00*")
	assert.Contains(t, msg, "Rua das Flores, 10, Centro")
	assert.Contains(t, msg, "*FORMA DE PAGAMENTO:* Pix")
}

func TestFormatMessageIsDeterministic(t *testing.T) {
	form := validForm()
	require.NoError(t, form.Validate())

	a := FormatMessage("Açaí Real", form, sampleItems(), decimal.NewFromInt(67))
	b := FormatMessage("Açaí Real", form, sampleItems(), decimal.NewFromInt(67))
	assert.Equal(t, a, b)
}

func TestFormatMessageOmitsPhoneWhenEmpty(t *testing.T) {
	form := validForm()
	require.NoError(t, form.Validate())

	msg := FormatMessage("Açaí Real", form, sampleItems(), decimal.NewFromInt(67))
	assert.NotContains(t, msg, "CONTATO")

	form.Phone = "87 99999-0000"
	msg = FormatMessage("Açaí Real", form, sampleItems(), decimal.NewFromInt(67))
	assert.Contains(t, msg, "*CONTATO:* 87 99999-0000")
}

func TestLinkEncodesMessage(t *testing.T) {
	link := Link("5587999279050", "pedido: 2x açaí & nutella")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/5587999279050", u.Path)
	assert.Equal(t, "pedido: 2x açaí & nutella", u.Query().Get("text"))
	assert.False(t, strings.ContainsAny(link, " \n"), "raw whitespace must be encoded")
}

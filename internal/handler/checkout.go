package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/acai-real/storefront/internal/cart"
	"github.com/acai-real/storefront/internal/handoff"
)

// CheckoutHandler formats the cart into a WhatsApp order message and hands
// it off. The cart itself is never mutated by checkout.
type CheckoutHandler struct {
	cart       *cart.Cart
	dispatcher handoff.Dispatcher
	storeName  string
	number     string
}

// NewCheckoutHandler creates a new CheckoutHandler addressed to the shop's
// WhatsApp number.
func NewCheckoutHandler(c *cart.Cart, d handoff.Dispatcher, storeName, number string) *CheckoutHandler {
	return &CheckoutHandler{cart: c, dispatcher: d, storeName: storeName, number: number}
}

// RegisterRoutes registers the checkout endpoint on the given Chi router.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Checkout)
}

type checkoutResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
	Total   string `json:"total"`
}

// Checkout validates the delivery form, renders the order message and
// dispatches the WhatsApp deep link. Fire and forget: there is no delivery
// confirmation and no order state is kept.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var form handoff.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := form.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "name, address and neighborhood are required"})
		return
	}

	items := h.cart.Items()
	if len(items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cart is empty"})
		return
	}

	total := h.cart.Total()
	message := handoff.FormatMessage(h.storeName, form, items, total)
	link := handoff.Link(h.number, message)

	if err := h.dispatcher.Dispatch(link); err != nil {
		log.Warn().Err(err).Msg("order handoff dispatch failed")
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		Message: message,
		Link:    link,
		Total:   total.StringFixed(2),
	})
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acai-real/storefront/internal/customize"
	"github.com/acai-real/storefront/internal/enum"
)

// ReferenceHandler serves the fixed reference data: menu categories, the
// add-on catalog and the accepted payment methods.
type ReferenceHandler struct{}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// RegisterRoutes registers reference endpoints on the given Chi router.
func (h *ReferenceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.Categories)
	r.Get("/extras", h.Extras)
	r.Get("/payment-methods", h.PaymentMethods)
}

type categoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type addOnResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Categories returns the fixed category tabs in menu order.
func (h *ReferenceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	resp := []categoryResponse{
		{ID: enum.CategoryClassic, Label: "Essenciais", Icon: "💜"},
		{ID: enum.CategoryPremium, Label: "Assinaturas", Icon: "✨"},
		{ID: enum.CategoryCombos, Label: "Para Dividir", Icon: "🔥"},
		{ID: enum.CategorySides, Label: "Turbinar", Icon: "🚀"},
	}
	writeJSON(w, http.StatusOK, resp)
}

// Extras returns the fixed add-on catalog.
func (h *ReferenceHandler) Extras(w http.ResponseWriter, r *http.Request) {
	addOns := customize.AddOns()
	resp := make([]addOnResponse, len(addOns))
	for i, a := range addOns {
		resp[i] = addOnResponse{Name: a.Name, Price: a.Price.StringFixed(2)}
	}
	writeJSON(w, http.StatusOK, resp)
}

// PaymentMethods returns the accepted payment methods, default first.
func (h *ReferenceHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, enum.PaymentMethods)
}

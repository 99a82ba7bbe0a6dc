package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/acai-real/storefront/internal/cart"
	"github.com/acai-real/storefront/internal/catalog"
	"github.com/acai-real/storefront/internal/customize"
)

// ItemGetter resolves a catalog item for customization. Satisfied by
// *catalog.Store.
type ItemGetter interface {
	Get(id string) (catalog.Item, error)
}

// CartHandler handles the cart endpoints.
type CartHandler struct {
	cart    *cart.Cart
	catalog ItemGetter
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(c *cart.Cart, catalog ItemGetter) *CartHandler {
	return &CartHandler{cart: c, catalog: catalog}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Delete("/", h.Clear)
	r.Post("/items", h.AddItem)
	r.Patch("/items", h.UpdateQuantity)
	r.Delete("/items", h.RemoveItem)
}

// --- Request / Response types ---

type addItemRequest struct {
	ItemID   string   `json:"item_id"`
	Quantity *float64 `json:"quantity"`
	AddOns   []string `json:"add_ons"`
}

type updateQuantityRequest struct {
	ItemID string  `json:"item_id"`
	Name   string  `json:"name"`
	Delta  float64 `json:"delta"`
}

type lineItemResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

type cartResponse struct {
	Items   []lineItemResponse `json:"items"`
	Total   string             `json:"total"`
	Pulsing bool               `json:"pulsing"`
}

func (h *CartHandler) toCartResponse() cartResponse {
	items := h.cart.Items()
	resp := cartResponse{
		Items:   make([]lineItemResponse, len(items)),
		Total:   h.cart.Total().StringFixed(2),
		Pulsing: h.cart.Pulsing(),
	}
	for i, li := range items {
		resp.Items[i] = lineItemResponse{
			ItemID:   li.ItemID,
			Name:     li.Name,
			Price:    li.Price.StringFixed(2),
			Quantity: li.Quantity,
			Subtotal: li.Subtotal().StringFixed(2),
			Image:    li.Image,
			Category: li.Category,
		}
	}
	return resp
}

// --- Handlers ---

// Get returns the current cart contents and derived total.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.toCartResponse())
}

// AddItem runs the customization flow for the requested catalog item and
// merges the resulting line item into the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.ItemID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "item_id is required"})
		return
	}

	item, err := h.catalog.Get(req.ItemID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	sel := customize.NewSelection(item)
	if req.Quantity != nil {
		sel.SetQuantity(*req.Quantity)
	}
	for _, name := range req.AddOns {
		sel.Toggle(name)
	}

	li, err := sel.Confirm()
	if err != nil {
		if errors.Is(err, customize.ErrUnavailable) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "item is not available"})
			return
		}
		log.Error().Err(err).Msg("confirm selection")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.cart.AddItem(li)
	writeJSON(w, http.StatusOK, h.toCartResponse())
}

// UpdateQuantity adjusts a line item's quantity by a delta. The quantity
// never drops below 1; removal goes through RemoveItem.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.ItemID == "" || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "item_id and name are required"})
		return
	}

	h.cart.UpdateQuantity(req.ItemID, req.Name, req.Delta)
	writeJSON(w, http.StatusOK, h.toCartResponse())
}

// RemoveItem deletes the line item matching item_id and name.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("item_id")
	name := r.URL.Query().Get("name")
	if itemID == "" || name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "item_id and name are required"})
		return
	}

	h.cart.Remove(itemID, name)
	writeJSON(w, http.StatusOK, h.toCartResponse())
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	writeJSON(w, http.StatusOK, h.toCartResponse())
}

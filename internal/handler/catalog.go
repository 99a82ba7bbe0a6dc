package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/acai-real/storefront/internal/catalog"
	"github.com/acai-real/storefront/internal/enum"
)

// CatalogStore defines the catalog operations needed by these handlers.
// Satisfied by *catalog.Store; narrow interface for testability.
type CatalogStore interface {
	List() []catalog.Item
	Get(id string) (catalog.Item, error)
	Save(item catalog.Item) catalog.Item
	SetAvailability(id string, available bool) (catalog.Item, error)
	Delete(id string) error
}

// CatalogHandler handles catalog browse and operator edit endpoints.
type CatalogHandler struct {
	store CatalogStore
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(store CatalogStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// RegisterPublicRoutes registers the browse endpoints.
func (h *CatalogHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
}

// RegisterOperatorRoutes registers the catalog mutation endpoints. Expected
// to be mounted behind the operator middleware.
func (h *CatalogHandler) RegisterOperatorRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/availability", h.SetAvailability)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type saveItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Popular     bool   `json:"popular"`
	Tag         string `json:"tag"`
	Available   *bool  `json:"available"`
}

type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

type itemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
	Popular     bool   `json:"popular"`
	Tag         string `json:"tag,omitempty"`
}

func toItemResponse(it catalog.Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price.StringFixed(2),
		Image:       it.Image,
		Category:    it.Category,
		Available:   it.Available,
		Popular:     it.Popular,
		Tag:         it.Tag,
	}
}

// --- Helpers ---

var errNegativePrice = errors.New("negative price")

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errNegativePrice
	}
	return d, nil
}

// decodeSaveRequest validates a create/update body. The returned *bool is
// the explicit availability flag, nil when the request did not set one.
func (h *CatalogHandler) decodeSaveRequest(w http.ResponseWriter, r *http.Request) (catalog.Item, *bool, bool) {
	var req saveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return catalog.Item{}, nil, false
	}

	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return catalog.Item{}, nil, false
	}

	if req.Price == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price is required"})
		return catalog.Item{}, nil, false
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		if errors.Is(err, errNegativePrice) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price must be >= 0"})
		} else {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid price"})
		}
		return catalog.Item{}, nil, false
	}

	if !enum.IsValidCategory(req.Category) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category"})
		return catalog.Item{}, nil, false
	}

	item := catalog.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Image:       req.Image,
		Category:    req.Category,
		Popular:     req.Popular,
		Tag:         req.Tag,
	}
	return item, req.Available, true
}

// --- Handlers ---

// List returns the full catalog in stored order. Unavailable items stay
// visible; the client decides how to render them.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.store.List()
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single catalog item by ID.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Create appends a new item with a fresh identity. The store forces new
// items to Available regardless of the request.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	item, _, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}
	saved := h.store.Save(item)
	writeJSON(w, http.StatusCreated, toItemResponse(saved))
}

// Update replaces an existing item in place. Availability carries over from
// the current item unless the request sets it explicitly.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	current, err := h.store.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	item, available, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}
	item.ID = id
	item.Available = current.Available
	if available != nil {
		item.Available = *available
	}
	saved := h.store.Save(item)
	writeJSON(w, http.StatusOK, toItemResponse(saved))
}

// SetAvailability flips the in/out-of-stock flag.
func (h *CatalogHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req setAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := h.store.SetAvailability(chi.URLParam(r, "id"), req.Available)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete removes an item from the catalog.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(chi.URLParam(r, "id")); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	log.Info().Str("id", chi.URLParam(r, "id")).Msg("catalog item deleted")
	w.WriteHeader(http.StatusNoContent)
}

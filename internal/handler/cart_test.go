package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/acai-real/storefront/internal/cart"
	"github.com/acai-real/storefront/internal/catalog"
	"github.com/acai-real/storefront/internal/handler"
)

type mockItemGetter struct {
	items map[string]catalog.Item
}

func (m *mockItemGetter) Get(id string) (catalog.Item, error) {
	it, ok := m.items[id]
	if !ok {
		return catalog.Item{}, catalog.ErrNotFound
	}
	return it, nil
}

func setupCartRouter(c *cart.Cart, items ...catalog.Item) *chi.Mux {
	getter := &mockItemGetter{items: make(map[string]catalog.Item)}
	for _, it := range items {
		getter.items[it.ID] = it
	}
	h := handler.NewCartHandler(c, getter)
	r := chi.NewRouter()
	r.Route("/cart", h.RegisterRoutes)
	return r
}

func TestCartGetEmpty(t *testing.T) {
	router := setupCartRouter(cart.New())

	rr := doRequest(t, router, "GET", "/cart", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	resp := decodeResponse(t, rr)
	if resp["total"] != "0.00" {
		t.Errorf("total: got %v, want 0.00", resp["total"])
	}
}

func TestCartAddItemWithAddOns(t *testing.T) {
	router := setupCartRouter(cart.New(), testItem("1", "Clássico 300ml", 18))

	rr := doRequest(t, router, "POST", "/cart/items", map[string]interface{}{
		"item_id":  "1",
		"quantity": 2,
		"add_ons":  []string{"Nutella Original"},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeResponse(t, rr)
	items := resp["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("items: got %d, want 1", len(items))
	}
	li := items[0].(map[string]interface{})
	if li["name"] != "Clássico 300ml (+Nutella Original)" {
		t.Errorf("name: got %v", li["name"])
	}
	if li["price"] != "23.00" {
		t.Errorf("price: got %v, want 23.00", li["price"])
	}
	// (18 + 5) × 2
	if resp["total"] != "46.00" {
		t.Errorf("total: got %v, want 46.00", resp["total"])
	}
	if resp["pulsing"] != true {
		t.Errorf("pulsing: got %v, want true", resp["pulsing"])
	}
}

func TestCartAddItemMergesIdenticalSelections(t *testing.T) {
	c := cart.New()
	router := setupCartRouter(c, testItem("1", "Clássico 300ml", 18))

	body := map[string]interface{}{"item_id": "1", "quantity": 1, "add_ons": []string{"Leite Ninho"}}
	doRequest(t, router, "POST", "/cart/items", body)
	doRequest(t, router, "POST", "/cart/items", body)

	if c.Len() != 1 {
		t.Fatalf("entries: got %d, want 1 (merged)", c.Len())
	}
	if got := c.Items()[0].Quantity; got != 2 {
		t.Errorf("quantity: got %d, want 2", got)
	}
}

func TestCartAddItemUnknownItem(t *testing.T) {
	router := setupCartRouter(cart.New())

	rr := doRequest(t, router, "POST", "/cart/items", map[string]interface{}{"item_id": "ghost"})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestCartAddItemUnavailableItem(t *testing.T) {
	item := testItem("1", "Esgotado", 18)
	item.Available = false
	router := setupCartRouter(cart.New(), item)

	rr := doRequest(t, router, "POST", "/cart/items", map[string]interface{}{"item_id": "1"})

	if rr.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestCartUpdateQuantityClampsAtOne(t *testing.T) {
	c := cart.New()
	router := setupCartRouter(c, testItem("1", "Clássico 300ml", 18))
	doRequest(t, router, "POST", "/cart/items", map[string]interface{}{"item_id": "1"})

	rr := doRequest(t, router, "PATCH", "/cart/items", map[string]interface{}{
		"item_id": "1",
		"name":    "Clássico 300ml",
		"delta":   -5,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if got := c.Items()[0].Quantity; got != 1 {
		t.Errorf("quantity: got %d, want 1", got)
	}
}

func TestCartRemoveItem(t *testing.T) {
	c := cart.New()
	router := setupCartRouter(c, testItem("1", "Clássico 300ml", 18))
	doRequest(t, router, "POST", "/cart/items", map[string]interface{}{"item_id": "1"})

	path := "/cart/items?item_id=1&name=" + url.QueryEscape("Clássico 300ml")
	rr := doRequest(t, router, "DELETE", path, nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if c.Len() != 0 {
		t.Errorf("entries: got %d, want 0", c.Len())
	}
}

func TestCartClear(t *testing.T) {
	c := cart.New()
	router := setupCartRouter(c, testItem("1", "Clássico 300ml", 18))
	doRequest(t, router, "POST", "/cart/items", map[string]interface{}{"item_id": "1"})

	rr := doRequest(t, router, "DELETE", "/cart", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if c.Len() != 0 {
		t.Errorf("entries: got %d, want 0", c.Len())
	}
}

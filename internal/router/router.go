package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/acai-real/storefront/internal/cart"
	"github.com/acai-real/storefront/internal/catalog"
	"github.com/acai-real/storefront/internal/config"
	"github.com/acai-real/storefront/internal/handler"
	"github.com/acai-real/storefront/internal/handoff"
	mw "github.com/acai-real/storefront/internal/middleware"
	"github.com/acai-real/storefront/internal/operator"
	"github.com/acai-real/storefront/internal/ws"
)

// New creates a Chi router with all storefront routes wired up. Catalog
// mutations sit behind the operator gate; everything else is public.
func New(cfg *config.Config, logger zerolog.Logger, store *catalog.Store, c *cart.Cart, session *operator.Session, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(mw.Logging(logger))
	r.Use(chimw.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Storefront event stream (cart pulse, catalog updates)
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	catalogHandler := handler.NewCatalogHandler(store)
	r.Route("/catalog", func(r chi.Router) {
		catalogHandler.RegisterPublicRoutes(r)

		// Operator-gated mutations
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireOperator(session))
			catalogHandler.RegisterOperatorRoutes(r)
		})
	})

	referenceHandler := handler.NewReferenceHandler()
	referenceHandler.RegisterRoutes(r)

	cartHandler := handler.NewCartHandler(c, store)
	r.Route("/cart", cartHandler.RegisterRoutes)

	sessionHandler := handler.NewSessionHandler(session)
	r.Route("/operator", sessionHandler.RegisterRoutes)

	dispatcher := handoff.LogDispatcher{Log: logger}
	checkoutHandler := handler.NewCheckoutHandler(c, dispatcher, cfg.StoreName, cfg.WhatsAppNumber)
	r.Route("/checkout", checkoutHandler.RegisterRoutes)

	return r
}

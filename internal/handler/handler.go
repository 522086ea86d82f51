// Package handler exposes the storefront services over HTTP.
package handler

import (
	"net/http"
	"time"

	"bagstore/internal/cache"
	"bagstore/internal/checkout"
	"bagstore/internal/collection"
	"bagstore/internal/logger"
	"bagstore/internal/middleware"
	"bagstore/internal/product"
	"bagstore/internal/review"
	"bagstore/internal/storefront"
	"bagstore/internal/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Revalidator drops cached catalog entries by tag.
type Revalidator interface {
	Revalidate(tags ...cache.Tag)
}

type statsReporter interface {
	Stats() cache.Stats
}

type Deps struct {
	Products    product.Service
	Collections collection.Service
	Storefront  storefront.Service
	Checkout    checkout.Service
	Reviews     review.Service
	Cache       Revalidator

	// Limiter is optional; without it requests are not rate limited.
	Limiter *middleware.Limiter

	RevalidationSecret string
	AdminJWTSecret     string
	AllowedOrigins     []string
}

type Handler struct {
	products    product.Service
	collections collection.Service
	storefront  storefront.Service
	checkout    checkout.Service
	reviews     review.Service
	cache       Revalidator

	revalidationSecret string
	now                func() time.Time
}

func New(d Deps) *Handler {
	return &Handler{
		products:           d.Products,
		collections:        d.Collections,
		storefront:         d.Storefront,
		checkout:           d.Checkout,
		reviews:            d.Reviews,
		cache:              d.Cache,
		revalidationSecret: d.RevalidationSecret,
		now:                time.Now,
	}
}

// NewRouter wires the middleware chain and every route.
func NewRouter(d Deps) http.Handler {
	h := New(d)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(d.AllowedOrigins))
	r.Use(middleware.AuthMiddleware(d.AdminJWTSecret))
	if d.Limiter != nil {
		r.Use(d.Limiter.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Route("/{handle}", func(r chi.Router) {
				r.Get("/", h.ProductPage)
				r.Get("/quote", h.Quote)
				r.Get("/checkout", h.Checkout)
				r.Get("/recommendations", h.Recommendations)
				r.Post("/selection", h.Select)
			})
		})

		r.Get("/collections", h.ListCollections)
		r.Get("/collections/{handle}/products", h.CollectionProducts)

		r.Get("/reviews", h.Reviews)

		r.Post("/revalidate", h.Revalidate)
		r.With(middleware.RequireAdmin).Post("/admin/revalidate", h.AdminRevalidate)
	})

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if sr, ok := h.cache.(statsReporter); ok {
		body["cache"] = sr.Stats()
	}
	utils.WriteJSON(w, http.StatusOK, body)
}

package handler

import (
	"net/http"

	"bagstore/internal/product"
	"bagstore/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collections.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"collections": collections})
}

func (h *Handler) CollectionProducts(w http.ResponseWriter, r *http.Request) {
	sort := product.ParseSort(r.URL.Query().Get("sort"))
	res, err := h.collections.Products(r.Context(), chi.URLParam(r, "handle"), sort)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) Reviews(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.reviews.Feed(r.Context()))
}

package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"bagstore/internal/product"
	"bagstore/internal/utils"

	"github.com/go-chi/chi/v5"
)

const maxSelectionBody = 16 << 10

type selectionRequest struct {
	Patch map[string]string `json:"patch"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := h.products.List(r.Context(), product.ListOptions{
		Query: q.Get("q"),
		Sort:  product.ParseSort(q.Get("sort")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *Handler) ProductPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.storefront.ProductPage(r.Context(), chi.URLParam(r, "handle"), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.storefront.Quote(r.Context(), chi.URLParam(r, "handle"), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, quote)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.Checkout(r.Context(), chi.URLParam(r, "handle"), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Recommendations(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

// Select applies a selector click. The query string carries the current
// page state; the body carries the patch.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxSelectionBody)).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	res, err := h.storefront.Select(r.Context(), chi.URLParam(r, "handle"), r.URL.Query(), req.Patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

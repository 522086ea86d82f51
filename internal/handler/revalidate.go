package handler

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"

	"bagstore/internal/cache"
	"bagstore/internal/logger"
	"bagstore/internal/utils"

	"go.uber.org/zap"
)

const TopicHeader = "X-Shopify-Topic"

var topicTags = map[string]cache.Tag{
	"collections/create": cache.TagCollections,
	"collections/delete": cache.TagCollections,
	"collections/update": cache.TagCollections,
	"products/create":    cache.TagProducts,
	"products/delete":    cache.TagProducts,
	"products/update":    cache.TagProducts,
}

var adminTags = []cache.Tag{cache.TagProducts, cache.TagCollections, cache.TagReviews}

type revalidateResponse struct {
	Status      int   `json:"status"`
	Revalidated bool  `json:"revalidated,omitempty"`
	Now         int64 `json:"now,omitempty"`
}

type adminRevalidateRequest struct {
	Tags []cache.Tag `json:"tags"`
}

// Revalidate is the catalog webhook. Unknown topics are acknowledged with 200
// so the sender stops retrying; only a bad secret is refused.
func (h *Handler) Revalidate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("method", "Revalidate"),
	)

	secret := r.URL.Query().Get("secret")
	if h.revalidationSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.revalidationSecret)) != 1 {
		log.Warn("invalid revalidation secret")
		utils.WriteJSON(w, http.StatusUnauthorized, revalidateResponse{Status: http.StatusUnauthorized})
		return
	}

	topic := r.Header.Get(TopicHeader)
	tag, ok := topicTags[topic]
	if !ok {
		log.Debug("ignoring webhook topic", zap.String("topic", topic))
		utils.WriteJSON(w, http.StatusOK, revalidateResponse{Status: http.StatusOK})
		return
	}

	h.cache.Revalidate(tag)
	log.Info("catalog revalidated", zap.String("topic", topic), zap.String("tag", string(tag)))

	utils.WriteJSON(w, http.StatusOK, revalidateResponse{
		Status:      http.StatusOK,
		Revalidated: true,
		Now:         h.now().UnixMilli(),
	})
}

// AdminRevalidate drops the requested tags, or every cached tag when the
// body names none.
func (h *Handler) AdminRevalidate(w http.ResponseWriter, r *http.Request) {
	var req adminRevalidateRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, 4<<10))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
			return
		}
	}

	tags := req.Tags
	if len(tags) == 0 {
		tags = adminTags
	}
	for _, t := range tags {
		if !slices.Contains(adminTags, t) {
			writeError(w, r, fmt.Errorf("%w: unknown tag %q", ErrInvalidBody, t))
			return
		}
	}

	h.cache.Revalidate(tags...)

	sub, _ := utils.GetSubjectFromContext(r.Context())
	logger.FromCtx(r.Context()).Info("catalog revalidated by admin",
		zap.String("layer", "handler"),
		zap.String("subject", sub),
		zap.Bool("internal", utils.IsInternalRequest(r.Context())),
		zap.Any("tags", tags),
	)

	utils.WriteJSON(w, http.StatusOK, revalidateResponse{
		Status:      http.StatusOK,
		Revalidated: true,
		Now:         h.now().UnixMilli(),
	})
}

package handler

import (
	"errors"
	"net/http"

	"bagstore/internal/checkout"
	"bagstore/internal/collection"
	"bagstore/internal/logger"
	"bagstore/internal/product"
	"bagstore/internal/utils"

	"go.uber.org/zap"
)

var ErrInvalidBody = errors.New("invalid request body")

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, collection.ErrCollectionNotFound):
		return http.StatusNotFound
	case errors.Is(err, product.ErrInvalidHandle),
		errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrOrderUnavailable):
		return http.StatusConflict
	case errors.Is(err, checkout.ErrMissingNumber):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError hides internal error text behind the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request error",
			zap.String("layer", "handler"),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, http.StatusText(code), code)
		return
	}
	utils.WriteJSONError(w, err.Error(), code)
}

package review

import "errors"

var (
	ErrPlacesNotConfigured = errors.New("google places api key is not configured")
	ErrPlacesRequest       = errors.New("google places request failed")
	ErrPlacesStatus        = errors.New("google places returned an error status")
)

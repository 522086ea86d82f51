package checkout

import "errors"

var (
	// ErrOrderUnavailable means the current selection resolves to no variant,
	// so the order action stays disabled.
	ErrOrderUnavailable = errors.New("no variant matches the current selection")
	ErrMissingNumber    = errors.New("whatsapp number is not configured")
)

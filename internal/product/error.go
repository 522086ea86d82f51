package product

import "errors"

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Validation --
	ErrInvalidHandle      = errors.New("invalid product handle")
	ErrInvalidTierQty     = errors.New("price tier minimum quantity must be at least 1")
	ErrDuplicateTierQty   = errors.New("duplicate price tier minimum quantity")
	ErrInvalidTierPrice   = errors.New("price tier unit price must be positive")
	ErrMixedTierCurrency  = errors.New("price tiers use more than one currency")
	ErrInvalidVariantOpts = errors.New("variant options do not match product options")

	// -- Storage --
	ErrFailedGetProduct   = errors.New("failed to get product")
	ErrFailedListProducts = errors.New("failed to list products")
	ErrFailedDecodeColumn = errors.New("failed to decode product column")
)

package checkout

import (
	"bagstore/internal/pricing"
	"bagstore/internal/product"
	"bagstore/internal/selection"
)

// Order is the WhatsApp handoff for one product page state.
type Order struct {
	Handle         string           `json:"handle"`
	Variant        *product.Variant `json:"variant,omitempty"`
	State          selection.State  `json:"state"`
	Quote          pricing.Quote    `json:"quote"`
	VariantOptions []string         `json:"variantOptions"`
	ProductURL     string           `json:"productUrl"`
	Message        string           `json:"message"`
	Link           string           `json:"link"`
	Enabled        bool             `json:"enabled"`
}

type Options struct {
	WhatsAppNumber string
	StoreURL       string
	Lang           string
}

package storefront

import (
	"bagstore/internal/availability"
	"bagstore/internal/money"
	"bagstore/internal/pricing"
	"bagstore/internal/product"
	"bagstore/internal/review"
	"bagstore/internal/selection"
)

// Display carries money values already formatted for the store locale.
type Display struct {
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
	Savings   string `json:"savings,omitempty"`
	FromPrice string `json:"fromPrice"`
}

// Page is everything a product page renders for one selection state.
type Page struct {
	Product        *product.Product   `json:"product"`
	State          selection.State    `json:"state"`
	Query          string             `json:"query"`
	SelectorHidden bool               `json:"selectorHidden"`
	Options        []availability.Row `json:"options"`
	Variant        *product.Variant   `json:"variant,omitempty"`
	CanOrder       bool               `json:"canOrder"`
	Quote          pricing.Quote      `json:"quote"`
	FromPrice      money.Money        `json:"fromPrice"`
	Display        Display            `json:"display"`
	Gallery        Gallery            `json:"gallery"`
	Rating         review.Summary     `json:"rating"`
}

// SelectionResult is the reduced state after a selector click.
type SelectionResult struct {
	State    selection.State    `json:"state"`
	Query    string             `json:"query"`
	Options  []availability.Row `json:"options"`
	Variant  *product.Variant   `json:"variant,omitempty"`
	CanOrder bool               `json:"canOrder"`
	Gallery  Gallery            `json:"gallery"`
}

package pricing

import (
	"bagstore/internal/money"
	"bagstore/internal/product"
)

// TierRow is one line of the tier table shown next to the quantity input.
type TierRow struct {
	MinQuantity int         `json:"minQuantity"`
	UnitPrice   money.Money `json:"unitPrice"`
	Active      bool        `json:"active"`
	// Reached rows carry the total for the current quantity at this tier's price.
	Reached bool         `json:"reached"`
	Total   *money.Money `json:"total,omitempty"`
}

type Quote struct {
	Quantity    int          `json:"quantity"`
	MinQuantity int          `json:"minQuantity"`
	UnitPrice   money.Money  `json:"unitPrice"`
	Total       money.Money  `json:"total"`
	Savings     *money.Money `json:"savings,omitempty"`
	Tiers       []TierRow    `json:"tiers"`
}

// NewQuote prices quantity units of the product, using the selected variant's
// tiers and price when v is non-nil. quantity is clamped to the product's minimum.
func NewQuote(p *product.Product, v *product.Variant, quantity int) Quote {
	minQty := p.MinQuantity()
	if quantity < minQty {
		quantity = minQty
	}

	unit := UnitPrice(p, v, quantity)
	q := Quote{
		Quantity:    quantity,
		MinQuantity: minQty,
		UnitPrice:   unit,
		Total:       unit.Mul(quantity),
		Tiers:       TierTable(TiersFor(p, v), quantity),
	}

	// Savings are measured against the product's base tier, as listed.
	if saved, ok := Savings(p.PricingTiers, unit, quantity); ok {
		q.Savings = &saved
	}
	return q
}

// TierTable sorts tiers ascending and marks the active row: the last tier
// whose MinQuantity is reached by quantity.
func TierTable(tiers []product.PriceTier, quantity int) []TierRow {
	sorted := SortedTiers(tiers)

	active := -1
	for i, t := range sorted {
		if quantity >= t.MinQuantity {
			active = i
		}
	}

	rows := make([]TierRow, 0, len(sorted))
	for i, t := range sorted {
		row := TierRow{
			MinQuantity: t.MinQuantity,
			UnitPrice:   t.UnitPrice,
			Active:      i == active,
			Reached:     quantity >= t.MinQuantity,
		}
		if row.Reached {
			total := t.UnitPrice.Mul(quantity)
			row.Total = &total
		}
		rows = append(rows, row)
	}
	return rows
}

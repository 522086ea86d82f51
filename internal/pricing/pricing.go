// Package pricing resolves volume-tiered unit prices and the figures derived
// from them (totals, savings, the tier table shown on a product page).
//
// Everything here is pure: no I/O, no shared state, safe to recompute on
// every quantity or option change.
package pricing

import (
	"sort"

	"bagstore/internal/money"
	"bagstore/internal/product"
)

// ResolveUnitPrice returns the unit price of the tier with the largest
// MinQuantity not above quantity, or fallback when no tier qualifies.
// tiers need not be sorted. With duplicate thresholds the first one in input
// order wins; duplicates are rejected at ingestion by product.ValidateTiers.
func ResolveUnitPrice(tiers []product.PriceTier, quantity int, fallback money.Money) money.Money {
	best := -1
	for i, t := range tiers {
		if t.MinQuantity > quantity {
			continue
		}
		if best < 0 || t.MinQuantity > tiers[best].MinQuantity {
			best = i
		}
	}
	if best < 0 {
		return fallback
	}
	return tiers[best].UnitPrice
}

// TiersFor picks the tier list in effect: a variant's own non-empty list is
// used exclusively, then the product's list, otherwise nil.
func TiersFor(p *product.Product, v *product.Variant) []product.PriceTier {
	if v != nil && len(v.PricingTiers) > 0 {
		return v.PricingTiers
	}
	if p != nil && len(p.PricingTiers) > 0 {
		return p.PricingTiers
	}
	return nil
}

// FallbackPrice is the selected variant's price, else the product's minimum
// variant price. The product's currency wins when both carry one.
func FallbackPrice(p *product.Product, v *product.Variant) money.Money {
	var base money.Money
	if p != nil {
		base = p.BasePrice()
	}
	if v != nil && (v.Price.CurrencyCode != "" || !v.Price.IsZero()) {
		base.Amount = v.Price.Amount
		if base.CurrencyCode == "" {
			base.CurrencyCode = v.Price.CurrencyCode
		}
	}
	return base
}

// UnitPrice applies tier-source precedence and resolves the unit price.
func UnitPrice(p *product.Product, v *product.Variant, quantity int) money.Money {
	return ResolveUnitPrice(TiersFor(p, v), quantity, FallbackPrice(p, v))
}

// Savings is (tiers[0] price − unit) × quantity. It is reported only when
// quantity reaches tiers[0].MinQuantity and the amount is positive. tiers[0]
// is taken in input order, matching the product's listed base tier.
func Savings(tiers []product.PriceTier, unit money.Money, quantity int) (money.Money, bool) {
	if len(tiers) == 0 {
		return money.Money{}, false
	}

	base := tiers[0]
	if quantity < base.MinQuantity || !unit.LessThan(base.UnitPrice) {
		return money.Money{}, false
	}

	saved := base.UnitPrice.Sub(unit).Mul(quantity)
	saved.CurrencyCode = unit.CurrencyCode
	if !saved.Amount.IsPositive() {
		return money.Money{}, false
	}
	return saved, true
}

// LowestTierPrice is the cheapest unit price a customer can reach ("from"
// price), falling back to the product's minimum variant price.
func LowestTierPrice(p *product.Product) money.Money {
	if len(p.PricingTiers) == 0 {
		return p.BasePrice()
	}
	lowest := p.PricingTiers[0].UnitPrice
	for _, t := range p.PricingTiers[1:] {
		if t.UnitPrice.LessThan(lowest) {
			lowest = t.UnitPrice
		}
	}
	if lowest.CurrencyCode == "" {
		lowest.CurrencyCode = p.PriceRange.MaxVariantPrice.CurrencyCode
	}
	return lowest
}

// SortedTiers returns a copy of tiers ordered by ascending MinQuantity.
func SortedTiers(tiers []product.PriceTier) []product.PriceTier {
	out := make([]product.PriceTier, len(tiers))
	copy(out, tiers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinQuantity < out[j].MinQuantity
	})
	return out
}

package product

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateTiers checks a tier list at ingestion time. Duplicate thresholds are
// rejected here because the resolver does not guard against them.
func ValidateTiers(tiers []PriceTier) error {
	seen := make(map[int]struct{}, len(tiers))
	currency := ""

	for i, t := range tiers {
		if t.MinQuantity < 1 {
			return fmt.Errorf("tier %d: %w", i, ErrInvalidTierQty)
		}
		if _, dup := seen[t.MinQuantity]; dup {
			return fmt.Errorf("tier %d (min %d): %w", i, t.MinQuantity, ErrDuplicateTierQty)
		}
		seen[t.MinQuantity] = struct{}{}

		if !t.UnitPrice.Amount.IsPositive() {
			return fmt.Errorf("tier %d: %w", i, ErrInvalidTierPrice)
		}
		if currency != "" && t.UnitPrice.CurrencyCode != currency {
			return fmt.Errorf("tier %d: %w", i, ErrMixedTierCurrency)
		}
		currency = t.UnitPrice.CurrencyCode
	}
	return nil
}

// Validate checks every tier list of a product and that each variant names
// only known option values.
func Validate(p *Product) error {
	var errs []error

	if err := ValidateTiers(p.PricingTiers); err != nil {
		errs = append(errs, fmt.Errorf("product %s: %w", p.Handle, err))
	}

	allowed := make(map[string]map[string]struct{}, len(p.Options))
	for _, o := range p.Options {
		vals := make(map[string]struct{}, len(o.Values))
		for _, v := range o.Values {
			vals[v] = struct{}{}
		}
		allowed[strings.ToLower(o.Name)] = vals
	}

	for _, v := range p.Variants {
		if err := ValidateTiers(v.PricingTiers); err != nil {
			errs = append(errs, fmt.Errorf("variant %s: %w", v.ID, err))
		}
		if len(allowed) == 0 {
			continue
		}
		for _, so := range v.SelectedOptions {
			vals, ok := allowed[strings.ToLower(so.Name)]
			if !ok {
				errs = append(errs, fmt.Errorf("variant %s option %q: %w", v.ID, so.Name, ErrInvalidVariantOpts))
				continue
			}
			if _, ok := vals[so.Value]; !ok {
				errs = append(errs, fmt.Errorf("variant %s value %q: %w", v.ID, so.Value, ErrInvalidVariantOpts))
			}
		}
	}

	return errors.Join(errs...)
}

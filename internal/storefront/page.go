package storefront

import (
	"net/url"

	"bagstore/internal/availability"
	"bagstore/internal/pricing"
	"bagstore/internal/product"
	"bagstore/internal/review"
	"bagstore/internal/selection"

	"golang.org/x/text/language"
)

// BuildPage derives the product page for the state carried by query.
func BuildPage(p *product.Product, query url.Values, lang language.Tag) *Page {
	state := selection.Initial(query, p)
	quantity := pricing.ClampQuantity(query.Get(selection.QuantityKey), p.MinQuantity())

	v, ok := selection.SelectedVariant(p, state)
	if !ok {
		v = nil
	}

	quote := pricing.NewQuote(p, v, quantity)
	from := pricing.LowestTierPrice(p)

	display := Display{
		UnitPrice: quote.UnitPrice.Format(lang),
		Total:     quote.Total.Format(lang),
		FromPrice: from.Format(lang),
	}
	if quote.Savings != nil {
		display.Savings = quote.Savings.Format(lang)
	}

	return &Page{
		Product:        p,
		State:          state,
		Query:          selection.Encode(query, state).Encode(),
		SelectorHidden: availability.SelectorHidden(p.Options),
		Options:        availability.Matrix(state.Selection(), p.Options, p.Variants),
		Variant:        v,
		CanOrder:       ok,
		Quote:          quote,
		FromPrice:      from,
		Display:        display,
		Gallery:        BuildGallery(p, state, v),
		Rating:         review.Summarize(p.Reviews),
	}
}

// ApplySelection reduces patch onto the state carried by query and returns
// the new state with its synced query string. Switching to another color
// brings the gallery back to its first image unless the patch picks one.
func ApplySelection(p *product.Product, query url.Values, patch map[string]string) *SelectionResult {
	prev := selection.Initial(query, p)
	state := selection.Reduce(prev, patch)
	color := state.Options[selection.ColorKey]
	if color != "" && color != prev.Options[selection.ColorKey] && state.Image == prev.Image {
		state.Image = "0"
	}

	v, ok := selection.SelectedVariant(p, state)
	if !ok {
		v = nil
	}

	return &SelectionResult{
		State:    state,
		Query:    selection.Encode(query, state).Encode(),
		Options:  availability.Matrix(state.Selection(), p.Options, p.Variants),
		Variant:  v,
		CanOrder: ok,
		Gallery:  BuildGallery(p, state, v),
	}
}

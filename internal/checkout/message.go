package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"bagstore/internal/money"
	"bagstore/internal/pricing"
	"bagstore/internal/product"
	"bagstore/internal/selection"

	"golang.org/x/text/language"
)

const whatsAppBase = "https://wa.me/"

// VariantLine lists "Name: value" pairs for the order message. The matched
// variant's options are used when there is one, else the first variant's;
// the selected value wins over the variant's own value.
func VariantLine(p *product.Product, v *product.Variant, s selection.State) []string {
	src := v
	if src == nil {
		if len(p.Variants) == 0 {
			return nil
		}
		src = &p.Variants[0]
	}

	out := make([]string, 0, len(src.SelectedOptions))
	for _, o := range src.SelectedOptions {
		value := s.Options[strings.ToLower(o.Name)]
		if value == "" {
			value = o.Value
		}
		out = append(out, o.Name+": "+value)
	}
	return out
}

// Message renders the pre-filled order request.
func Message(title string, variantLine []string, q pricing.Quote, productURL string, lang language.Tag) string {
	var b strings.Builder
	b.WriteString("Order request:\n")
	fmt.Fprintf(&b, "Product: %s\n", title)
	fmt.Fprintf(&b, "Variant: %s\n", strings.Join(variantLine, ", "))
	fmt.Fprintf(&b, "Quantity: %d\n", q.Quantity)
	fmt.Fprintf(&b, "Unit price: %s\n", q.UnitPrice.Format(lang))
	fmt.Fprintf(&b, "Total: %s\n", q.Total.Format(lang))
	if q.Savings != nil {
		fmt.Fprintf(&b, "You save %s on this order!\n", savingsIn(*q.Savings, q.UnitPrice).Format(lang))
	}
	fmt.Fprintf(&b, "Product link: %s", productURL)
	return b.String()
}

// Link builds the wa.me deep link carrying message. Spaces are sent as %20.
func Link(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return whatsAppBase + digitsOnly(number) + "?text=" + text
}

// ProductURL is the shareable page address for the current state.
func ProductURL(storeURL, handle string, query url.Values) string {
	u := strings.TrimRight(storeURL, "/") + "/product/" + url.PathEscape(handle)
	if enc := query.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func savingsIn(saved, unit money.Money) money.Money {
	if saved.CurrencyCode == "" {
		saved.CurrencyCode = unit.CurrencyCode
	}
	return saved
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Package selection holds the option/image state of a product page and keeps
// it in step with the page's query string.
package selection

import (
	"net/url"
	"slices"
	"strings"

	"bagstore/internal/availability"
	"bagstore/internal/product"
)

const (
	ImageKey    = "image"
	QuantityKey = "quantity"
	ColorKey    = "color"
)

// State is the selection on one product page view. Options maps lower-cased
// option names to values. Image is the chosen gallery index, kept as text the
// way it travels in the URL.
type State struct {
	Options map[string]string `json:"options"`
	Image   string            `json:"image,omitempty"`
}

func New() State {
	return State{Options: map[string]string{}}
}

// Selection exposes the option part of the state to the availability filter.
func (s State) Selection() availability.Selection {
	return availability.Selection(s.Options)
}

// HasOptions reports whether any option key carries a value.
func (s State) HasOptions() bool {
	for _, v := range s.Options {
		if v != "" {
			return true
		}
	}
	return false
}

// Reduce overlays patch onto s and returns the new state; s is left untouched.
// Keys are matched case-insensitively, the image key updates Image and the
// quantity key is ignored. Later writes to a key replace earlier ones; keys are
// never removed. When several patch keys fold to the same name the exact
// lower-case spelling wins.
func Reduce(s State, patch map[string]string) State {
	next := State{Options: make(map[string]string, len(s.Options)+len(patch)), Image: s.Image}
	for k, v := range s.Options {
		next.Options[k] = v
	}
	for _, k := range foldedOrder(patch) {
		v := patch[k]
		switch key := strings.ToLower(strings.TrimSpace(k)); key {
		case "", QuantityKey:
			continue
		case ImageKey:
			next.Image = v
		default:
			next.Options[key] = v
		}
	}
	return next
}

// Initial seeds the state from the page query. When the query names no
// option and the product has exactly one variant, that variant's options are
// adopted.
func Initial(query url.Values, p *product.Product) State {
	s := New()
	for _, k := range foldedOrder(query) {
		vals := query[k]
		if len(vals) == 0 {
			continue
		}
		switch key := strings.ToLower(k); key {
		case ImageKey:
			s.Image = vals[0]
		case QuantityKey:
		default:
			s.Options[key] = vals[0]
		}
	}

	if !s.HasOptions() && p != nil && len(p.Variants) == 1 {
		for _, o := range p.Variants[0].SelectedOptions {
			s.Options[strings.ToLower(o.Name)] = o.Value
		}
	}
	return s
}

// foldedOrder returns the keys of m in the order they should be applied so
// that keys differing only in case resolve the same way on every call. In
// ascending order upper-case spellings sort first, so the lower-case spelling
// is written last.
func foldedOrder[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Encode merges s into a copy of existing. Keys in s are set; keys missing
// from s are left as they were.
func Encode(existing url.Values, s State) url.Values {
	out := make(url.Values, len(existing)+len(s.Options)+1)
	for k, vals := range existing {
		out[k] = append([]string(nil), vals...)
	}
	for k, v := range s.Options {
		out.Set(k, v)
	}
	if s.Image != "" {
		out.Set(ImageKey, s.Image)
	}
	return out
}

// SelectedVariant returns the variant whose every option matches the state.
// A product with a single variant resolves to it even without a match. The
// boolean is false when no variant can be ordered from this state.
func SelectedVariant(p *product.Product, s State) (*product.Variant, bool) {
	for i := range p.Variants {
		if matches(&p.Variants[i], s) {
			return &p.Variants[i], true
		}
	}
	if len(p.Variants) == 1 {
		return &p.Variants[0], true
	}
	return nil, false
}

func matches(v *product.Variant, s State) bool {
	for _, o := range v.SelectedOptions {
		if s.Options[strings.ToLower(o.Name)] != o.Value {
			return false
		}
	}
	return true
}

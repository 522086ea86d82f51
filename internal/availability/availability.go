// Package availability decides which option values on a product page lead to
// a variant that can actually be bought.
package availability

import (
	"strings"

	"bagstore/internal/product"
)

// Selection maps a lower-cased option name to the chosen value.
type Selection map[string]string

// Cell is the state of one value button in the option selector.
type Cell struct {
	Value      string `json:"value"`
	Selectable bool   `json:"selectable"`
	Active     bool   `json:"active"`
}

type Row struct {
	Option string `json:"option"`
	Values []Cell `json:"values"`
}

// SelectorHidden reports whether the option selector is suppressed: the
// product has no options, or a single option with a single value.
func SelectorHidden(options []product.Option) bool {
	return len(options) == 0 || (len(options) == 1 && len(options[0].Values) == 1)
}

// IsValueSelectable reports whether choosing value for option, on top of the
// current selection, still matches an in-stock variant. Selection entries that
// name unknown options or values are ignored. Matching is conjunctive: the
// variant must agree with every remaining entry.
func IsValueSelectable(
	option product.Option,
	value string,
	selection Selection,
	options []product.Option,
	variants []product.Variant,
) bool {
	candidate := make(Selection, len(selection)+1)
	for k, v := range selection {
		candidate[k] = v
	}
	candidate[strings.ToLower(option.Name)] = value

	filtered := filterKnown(candidate, options)

	for i := range variants {
		if variants[i].AvailableForSale && matchesAll(&variants[i], filtered) {
			return true
		}
	}
	return false
}

// Matrix evaluates every value of every option against the current selection.
// It is empty when the selector is hidden.
func Matrix(selection Selection, options []product.Option, variants []product.Variant) []Row {
	if SelectorHidden(options) {
		return []Row{}
	}

	rows := make([]Row, 0, len(options))
	for _, opt := range options {
		key := strings.ToLower(opt.Name)
		row := Row{Option: opt.Name, Values: make([]Cell, 0, len(opt.Values))}
		for _, v := range opt.Values {
			row.Values = append(row.Values, Cell{
				Value:      v,
				Selectable: IsValueSelectable(opt, v, selection, options, variants),
				Active:     selection[key] == v,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

func filterKnown(candidate Selection, options []product.Option) Selection {
	out := make(Selection, len(candidate))
	for key, value := range candidate {
		for _, opt := range options {
			if strings.ToLower(opt.Name) == key && contains(opt.Values, value) {
				out[key] = value
				break
			}
		}
	}
	return out
}

func matchesAll(v *product.Variant, pairs Selection) bool {
	combo := make(map[string]string, len(v.SelectedOptions))
	for _, so := range v.SelectedOptions {
		combo[strings.ToLower(so.Name)] = so.Value
	}
	for key, value := range pairs {
		if combo[key] != value {
			return false
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

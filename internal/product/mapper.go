package product

import (
	"regexp"
	"sort"
	"strings"
)

var imageFileRegex = regexp.MustCompile(`.*/(.*)\..*`)

// Reshape normalises a product loaded from storage: it synthesises a Color
// option from ImagesByColor when none exists and fills missing image alt text.
func Reshape(p *Product) {
	if p == nil {
		return
	}

	if len(p.ImagesByColor) > 0 && !hasOption(p.Options, "color") {
		colors := make([]string, 0, len(p.ImagesByColor))
		for c := range p.ImagesByColor {
			colors = append(colors, c)
		}
		sort.Strings(colors)

		p.Options = append(p.Options, Option{
			ID:     "color-option",
			Name:   "Color",
			Values: colors,
		})
	}

	for i := range p.Images {
		if p.Images[i].AltText != "" {
			continue
		}
		p.Images[i].AltText = defaultAltText(p.Title, p.Images[i].URL)
	}
	if p.FeaturedImage.URL != "" && p.FeaturedImage.AltText == "" {
		p.FeaturedImage.AltText = defaultAltText(p.Title, p.FeaturedImage.URL)
	}
}

func defaultAltText(title, url string) string {
	m := imageFileRegex.FindStringSubmatch(url)
	if len(m) < 2 || m[1] == "" {
		return title
	}
	return title + " - " + m[1]
}

func hasOption(opts []Option, name string) bool {
	for _, o := range opts {
		if strings.EqualFold(o.Name, name) {
			return true
		}
	}
	return false
}

// Matches reports whether the product satisfies the query and tag filters.
func Matches(p *Product, opts ListOptions) bool {
	if opts.Tag != "" && !p.HasTag(opts.Tag) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(opts.Query)); q != "" {
		return strings.Contains(strings.ToLower(p.Handle), q) ||
			strings.Contains(strings.ToLower(p.Title), q)
	}
	return true
}

// SortProducts orders products in place. Relevance and trending keep source order.
func SortProducts(products []*Product, s Sort) {
	switch s {
	case SortLatest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].UpdatedAt.After(products[j].UpdatedAt)
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].BasePrice().LessThan(products[j].BasePrice())
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].BasePrice().LessThan(products[i].BasePrice())
		})
	}
}

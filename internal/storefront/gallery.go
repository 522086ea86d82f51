package storefront

import (
	"strconv"

	"bagstore/internal/product"
	"bagstore/internal/selection"
)

// Gallery is the image list shown for the current color and the index of the
// image in front.
type Gallery struct {
	Images []product.Image `json:"images"`
	Index  int             `json:"index"`
}

// selectedColor prefers the resolved variant's color over the raw state.
func selectedColor(s selection.State, v *product.Variant) string {
	if v != nil {
		if c, ok := v.OptionValue(selection.ColorKey); ok {
			return c
		}
	}
	return s.Options[selection.ColorKey]
}

// BuildGallery picks the color's own images when the product has any for it
// and falls back to the full image list. An index outside the list shows the
// first image.
func BuildGallery(p *product.Product, s selection.State, v *product.Variant) Gallery {
	images := p.Images
	if urls := p.ImagesByColor[selectedColor(s, v)]; len(urls) > 0 {
		images = make([]product.Image, 0, len(urls))
		for _, u := range urls {
			images = append(images, product.Image{URL: u, AltText: p.Title})
		}
	}

	idx, err := strconv.Atoi(s.Image)
	if err != nil || idx < 0 || idx >= len(images) {
		idx = 0
	}
	return Gallery{Images: images, Index: idx}
}

package collection

import (
	"time"

	"bagstore/internal/product"
)

// Reshape fills the storefront path of c.
func Reshape(c *Collection) {
	c.Path = AllPath + "/" + c.Handle
}

// All is the synthetic first entry of the collection menu.
func All(now time.Time) *Collection {
	return &Collection{
		Title:       "All",
		Description: "All products",
		SEO:         product.SEO{Title: "All", Description: "All products"},
		Path:        AllPath,
		UpdatedAt:   now,
	}
}

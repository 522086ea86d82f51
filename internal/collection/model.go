package collection

import (
	"strings"
	"time"

	"bagstore/internal/product"
)

// AllPath is where the synthetic "All" collection points.
const AllPath = "/search"

type Collection struct {
	Handle      string      `json:"handle"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	SEO         product.SEO `json:"seo"`
	Path        string      `json:"path"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Hidden collections exist for internal grouping and are not listed.
func (c *Collection) Hidden() bool { return strings.HasPrefix(c.Handle, "hidden") }

// WithProducts is a collection page: the collection and the products tagged with its handle.
type WithProducts struct {
	Collection *Collection        `json:"collection"`
	Products   []*product.Product `json:"products"`
}

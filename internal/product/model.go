package product

import (
	"strings"
	"time"

	"bagstore/internal/money"
)

// HiddenTag marks products that stay reachable by handle but never show up in listings.
const HiddenTag = "nextjs-frontend-hidden"

type PriceTier struct {
	MinQuantity int         `json:"minQuantity"`
	UnitPrice   money.Money `json:"unitPrice"`
}

type Option struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
	Price            money.Money      `json:"price"`
	PricingTiers     []PriceTier      `json:"pricingTiers,omitempty"`
}

type PriceRange struct {
	MaxVariantPrice money.Money `json:"maxVariantPrice"`
	MinVariantPrice money.Money `json:"minVariantPrice"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ReviewRating struct {
	RatingValue int `json:"ratingValue"`
}

type Review struct {
	Author        string       `json:"author"`
	ReviewBody    string       `json:"reviewBody"`
	DatePublished string       `json:"datePublished"`
	ReviewRating  ReviewRating `json:"reviewRating"`
}

type Product struct {
	ID                 string              `json:"id"`
	Handle             string              `json:"handle"`
	AvailableForSale   bool                `json:"availableForSale"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	DescriptionHTML    string              `json:"descriptionHtml"`
	Options            []Option            `json:"options"`
	PriceRange         PriceRange          `json:"priceRange"`
	Variants           []Variant           `json:"variants"`
	FeaturedImage      Image               `json:"featuredImage"`
	Images             []Image             `json:"images"`
	ImagesByColor      map[string][]string `json:"imagesByColor,omitempty"`
	SEO                SEO                 `json:"seo"`
	Tags               []string            `json:"tags"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	PricingTiers       []PriceTier         `json:"pricingTiers,omitempty"`
	MinAllowedQuantity int                 `json:"minAllowedQuantity,omitempty"`
	Reviews            []Review            `json:"reviews,omitempty"`
}

// MinQuantity is the smallest orderable quantity; products without one allow 1.
func (p *Product) MinQuantity() int {
	if p.MinAllowedQuantity < 1 {
		return 1
	}
	return p.MinAllowedQuantity
}

func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (p *Product) Hidden() bool { return p.HasTag(HiddenTag) }

// BasePrice is the price used when no tier applies and no variant is chosen.
func (p *Product) BasePrice() money.Money { return p.PriceRange.MinVariantPrice }

// OptionValue returns the variant's value for the named option, case-insensitively.
func (v *Variant) OptionValue(name string) (string, bool) {
	for _, o := range v.SelectedOptions {
		if strings.EqualFold(o.Name, name) {
			return o.Value, true
		}
	}
	return "", false
}

type Sort string

const (
	SortRelevance Sort = "relevance"
	SortTrending  Sort = "trending-desc"
	SortLatest    Sort = "latest-desc"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
)

// ParseSort maps a URL slug to a Sort, defaulting to relevance.
func ParseSort(slug string) Sort {
	switch s := Sort(strings.ToLower(strings.TrimSpace(slug))); s {
	case SortTrending, SortLatest, SortPriceAsc, SortPriceDesc:
		return s
	default:
		return SortRelevance
	}
}

type ListOptions struct {
	Query string
	Tag   string
	Sort  Sort
}

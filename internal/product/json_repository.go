package product

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"

	"bagstore/internal/logger"
	"bagstore/internal/utils"

	"go.uber.org/zap"
)

const ProductsFile = "products.json"

// connection accepts both the storefront's {"edges":[{"node":...}]} shape and a plain array.
type connection[T any] []T

func (c *connection[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*c = items
		return nil
	}

	var conn struct {
		Edges []struct {
			Node T `json:"node"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(data, &conn); err != nil {
		return err
	}

	items := make([]T, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		items = append(items, e.Node)
	}
	*c = items
	return nil
}

// rawProduct is a products.json entry; the outer Variants and Images shadow Product's.
type rawProduct struct {
	Product
	Variants connection[Variant] `json:"variants"`
	Images   connection[Image]   `json:"images"`
}

func (r rawProduct) toProduct() *Product {
	p := r.Product
	p.Variants = []Variant(r.Variants)
	p.Images = []Image(r.Images)
	Reshape(&p)
	return &p
}

// LoadFile reads and reshapes a products.json file.
func LoadFile(path string) ([]*Product, error) {
	var raw []rawProduct
	if err := utils.LoadJSONFile(path, &raw); err != nil {
		return nil, err
	}

	products := make([]*Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, r.toProduct())
	}
	return products, nil
}

type jsonRepository struct {
	path string
}

// NewJSONRepository serves products from <dir>/products.json. The file is
// re-read on every call; wrap it with NewCachedRepository in production.
func NewJSONRepository(dir string) Repository {
	return &jsonRepository{path: filepath.Join(dir, ProductsFile)}
}

func (r *jsonRepository) load(ctx context.Context) []*Product {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("file", r.path),
	)

	products, err := LoadFile(r.path)
	if err != nil {
		log.Error("failed to load local catalog file", zap.Error(err))
		return nil
	}

	for _, p := range products {
		if err := Validate(p); err != nil {
			log.Warn("catalog product failed validation",
				zap.String("handle", p.Handle),
				zap.Error(err),
			)
		}
	}
	return products
}

func (r *jsonRepository) GetByHandle(ctx context.Context, handle string) (*Product, error) {
	for _, p := range r.load(ctx) {
		if p.Handle == handle {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *jsonRepository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	all := r.load(ctx)

	products := make([]*Product, 0, len(all))
	for _, p := range all {
		if Matches(p, opts) {
			products = append(products, p)
		}
	}

	SortProducts(products, opts.Sort)
	return products, nil
}

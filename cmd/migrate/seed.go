package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"bagstore/internal/collection"
	"bagstore/internal/logger"
	"bagstore/internal/product"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

var ErrInvalidCatalog = errors.New("catalog failed validation")

const upsertProduct = `
	INSERT INTO products (
		id, handle, title, description, description_html, tags,
		available_for_sale, min_allowed_quantity,
		options, variants, pricing_tiers, images, images_by_color, reviews,
		price_range, featured_image, seo_title, seo_description, position, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	ON CONFLICT (handle) DO UPDATE SET
		id = EXCLUDED.id,
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		description_html = EXCLUDED.description_html,
		tags = EXCLUDED.tags,
		available_for_sale = EXCLUDED.available_for_sale,
		min_allowed_quantity = EXCLUDED.min_allowed_quantity,
		options = EXCLUDED.options,
		variants = EXCLUDED.variants,
		pricing_tiers = EXCLUDED.pricing_tiers,
		images = EXCLUDED.images,
		images_by_color = EXCLUDED.images_by_color,
		reviews = EXCLUDED.reviews,
		price_range = EXCLUDED.price_range,
		featured_image = EXCLUDED.featured_image,
		seo_title = EXCLUDED.seo_title,
		seo_description = EXCLUDED.seo_description,
		position = EXCLUDED.position,
		updated_at = EXCLUDED.updated_at`

const upsertCollection = `
	INSERT INTO collections (handle, title, description, seo_title, seo_description, position, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (handle) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		seo_title = EXCLUDED.seo_title,
		seo_description = EXCLUDED.seo_description,
		position = EXCLUDED.position,
		updated_at = EXCLUDED.updated_at`

// seed loads products.json and collections.json from dir into the catalog
// tables. Every product is validated first; one invalid product aborts the
// whole load before anything is written.
func seed(ctx context.Context, db *sql.DB, dir string) error {
	log := logger.L().With(zap.String("seed_dir", dir))

	products, err := product.LoadFile(filepath.Join(dir, product.ProductsFile))
	if err != nil {
		return err
	}
	collections, err := collection.LoadFile(filepath.Join(dir, collection.CollectionsFile))
	if err != nil {
		return err
	}

	var errs []error
	for _, p := range products {
		if err := product.Validate(p); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}

	err = inTx(ctx, db, func(tx *sql.Tx) error {
		for i, p := range products {
			args, err := productArgs(p, i)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, upsertProduct, args...); err != nil {
				return fmt.Errorf("insert product %s: %w", p.Handle, err)
			}
		}
		for i, c := range collections {
			_, err := tx.ExecContext(ctx, upsertCollection,
				c.Handle, c.Title, c.Description,
				nullString(c.SEO.Title), nullString(c.SEO.Description),
				i, c.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert collection %s: %w", c.Handle, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("catalog seeded",
		zap.Int("products", len(products)),
		zap.Int("collections", len(collections)),
	)
	return nil
}

func productArgs(p *product.Product, position int) ([]any, error) {
	jsonColumns := []struct {
		name string
		v    any
		// nullable columns store NULL instead of an empty document
		nullable bool
	}{
		{"options", nonNil(p.Options), false},
		{"variants", nonNil(p.Variants), false},
		{"pricing_tiers", p.PricingTiers, true},
		{"images", nonNil(p.Images), false},
		{"images_by_color", p.ImagesByColor, true},
		{"reviews", p.Reviews, true},
		{"price_range", p.PriceRange, false},
		{"featured_image", p.FeaturedImage, false},
	}

	encoded := make([]any, len(jsonColumns))
	for i, c := range jsonColumns {
		if c.nullable && isEmpty(c.v) {
			encoded[i] = nil
			continue
		}
		raw, err := json.Marshal(c.v)
		if err != nil {
			return nil, fmt.Errorf("encode %s of %s: %w", c.name, p.Handle, err)
		}
		encoded[i] = string(raw)
	}

	args := []any{
		p.ID, p.Handle, p.Title, p.Description, p.DescriptionHTML, pq.Array(nonNil(p.Tags)),
		p.AvailableForSale, p.MinAllowedQuantity,
	}
	args = append(args, encoded...)
	args = append(args,
		nullString(p.SEO.Title), nullString(p.SEO.Description),
		position, p.UpdatedAt,
	)
	return args, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case []product.PriceTier:
		return len(t) == 0
	case []product.Review:
		return len(t) == 0
	case map[string][]string:
		return len(t) == 0
	default:
		return v == nil
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

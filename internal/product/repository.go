package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

type Repository interface {
	GetByHandle(ctx context.Context, handle string) (*Product, error)
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, handle, title, description, description_html, tags,
	available_for_sale, min_allowed_quantity,
	options, variants, pricing_tiers, images, images_by_color, reviews,
	price_range, featured_image, seo_title, seo_description, updated_at`

func (r *repository) GetByHandle(ctx context.Context, handle string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE handle = $1`,
		handle,
	)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedGetProduct, err)
	}
	return p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	var (
		conds []string
		args  []any
	)

	if q := strings.TrimSpace(opts.Query); q != "" {
		// Plain substring match, so % and _ in the query are literal.
		args = append(args, q)
		conds = append(conds, fmt.Sprintf("(strpos(lower(handle), lower($%d)) > 0 OR strpos(lower(title), lower($%d)) > 0)", len(args), len(args)))
	}
	if opts.Tag != "" {
		args = append(args, opts.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY position ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedListProducts, err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedListProducts, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedListProducts, err)
	}

	SortProducts(products, opts.Sort)
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var (
		p                                       Product
		tags                                    pq.StringArray
		options, variants, tiers, images        []byte
		imagesByColor, reviews, priceRange, img []byte
		seoTitle, seoDescription                sql.NullString
		updatedAt                               time.Time
	)

	err := row.Scan(
		&p.ID, &p.Handle, &p.Title, &p.Description, &p.DescriptionHTML, &tags,
		&p.AvailableForSale, &p.MinAllowedQuantity,
		&options, &variants, &tiers, &images, &imagesByColor, &reviews,
		&priceRange, &img, &seoTitle, &seoDescription, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	columns := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"options", options, &p.Options},
		{"variants", variants, &p.Variants},
		{"pricing_tiers", tiers, &p.PricingTiers},
		{"images", images, &p.Images},
		{"images_by_color", imagesByColor, &p.ImagesByColor},
		{"reviews", reviews, &p.Reviews},
		{"price_range", priceRange, &p.PriceRange},
		{"featured_image", img, &p.FeaturedImage},
	}
	for _, c := range columns {
		if len(c.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(c.raw, c.dst); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrFailedDecodeColumn, c.name, err)
		}
	}

	p.Tags = []string(tags)
	p.SEO = SEO{Title: seoTitle.String, Description: seoDescription.String}
	p.UpdatedAt = updatedAt
	Reshape(&p)
	return &p, nil
}

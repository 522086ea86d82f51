package product

import (
	"context"
	"errors"
	"strings"

	"bagstore/internal/logger"
	"bagstore/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	GetProduct(ctx context.Context, handle string) (*Product, error)
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	Recommendations(ctx context.Context, handle string) ([]*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetProduct looks a product up by handle. Hidden products are returned.
func (s *service) GetProduct(ctx context.Context, handle string) (*Product, error) {
	handle = normalizeHandle(handle)
	if handle == "" {
		return nil, ErrInvalidHandle
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProduct"),
		zap.String("handle", handle),
	)

	p, err := s.repo.GetByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			log.Debug("product not found")
		} else {
			log.Error("failed to get product", zap.Error(err))
		}
		return nil, err
	}
	return p, nil
}

// List returns visible products matching opts.
func (s *service) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	timer := metrics.StartTimer()
	if opts.Sort == "" {
		opts.Sort = SortRelevance
	}

	log.Debug("list products requested",
		zap.String("query", opts.Query),
		zap.String("tag", opts.Tag),
		zap.String("sort", string(opts.Sort)),
	)

	all, err := s.repo.List(ctx, opts)
	if err != nil {
		log.Error("failed to list products",
			zap.Error(err),
			zap.Duration("duration", timer.Duration()),
		)
		return nil, err
	}

	products := visible(all)

	log.Info("list products success",
		zap.Int("count", len(products)),
		zap.Duration("duration", timer.Duration()),
	)
	return products, nil
}

// Recommendations returns every visible product other than the given one.
func (s *service) Recommendations(ctx context.Context, handle string) ([]*Product, error) {
	all, err := s.List(ctx, ListOptions{Sort: SortRelevance})
	if err != nil {
		return nil, err
	}

	handle = normalizeHandle(handle)
	out := make([]*Product, 0, len(all))
	for _, p := range all {
		if p.Handle != handle {
			out = append(out, p)
		}
	}
	return out, nil
}

func visible(products []*Product) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if p != nil && !p.Hidden() {
			out = append(out, p)
		}
	}
	return out
}

func normalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

package collection

import (
	"context"
	"errors"
	"strings"
	"time"

	"bagstore/internal/logger"
	"bagstore/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Collection, error)
	Get(ctx context.Context, handle string) (*Collection, error)
	Products(ctx context.Context, handle string, sort product.Sort) (*WithProducts, error)
}

type service struct {
	repo     Repository
	products product.Service
	now      func() time.Time
}

func NewService(repo Repository, products product.Service) Service {
	return &service{repo: repo, products: products, now: time.Now}
}

// List returns the collection menu: "All" first, then every collection not
// marked hidden, in source order.
func (s *service) List(ctx context.Context) ([]*Collection, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListCollections"),
	)

	all, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list collections", zap.Error(err))
		return nil, err
	}

	out := make([]*Collection, 0, len(all)+1)
	out = append(out, All(s.now()))
	for _, c := range all {
		if c != nil && !c.Hidden() {
			out = append(out, c)
		}
	}

	log.Info("list collections success", zap.Int("count", len(out)))
	return out, nil
}

func (s *service) Get(ctx context.Context, handle string) (*Collection, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))
	if handle == "" {
		return All(s.now()), nil
	}

	c, err := s.repo.GetByHandle(ctx, handle)
	if err != nil {
		if !errors.Is(err, ErrCollectionNotFound) {
			logger.FromCtx(ctx).Error("failed to get collection",
				zap.String("layer", "service"),
				zap.String("handle", handle),
				zap.Error(err),
			)
		}
		return nil, err
	}
	return c, nil
}

// Products lists the visible products tagged with the collection handle. The
// empty handle means every product.
func (s *service) Products(ctx context.Context, handle string, sort product.Sort) (*WithProducts, error) {
	c, err := s.Get(ctx, handle)
	if err != nil {
		return nil, err
	}

	products, err := s.products.List(ctx, product.ListOptions{Tag: c.Handle, Sort: sort})
	if err != nil {
		return nil, err
	}
	return &WithProducts{Collection: c, Products: products}, nil
}

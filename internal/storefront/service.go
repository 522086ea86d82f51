package storefront

import (
	"context"
	"net/url"

	"bagstore/internal/logger"
	"bagstore/internal/pricing"
	"bagstore/internal/product"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type Service interface {
	ProductPage(ctx context.Context, handle string, query url.Values) (*Page, error)
	Quote(ctx context.Context, handle string, query url.Values) (*pricing.Quote, error)
	Select(ctx context.Context, handle string, query url.Values, patch map[string]string) (*SelectionResult, error)
}

type service struct {
	products product.Service
	lang     language.Tag
}

// NewService builds page state on top of the product service. lang is a BCP
// 47 tag used for money formatting; unparsable tags fall back to English.
func NewService(products product.Service, lang string) Service {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &service{products: products, lang: tag}
}

func (s *service) ProductPage(ctx context.Context, handle string, query url.Values) (*Page, error) {
	p, err := s.products.GetProduct(ctx, handle)
	if err != nil {
		return nil, err
	}

	page := BuildPage(p, query, s.lang)
	logger.FromCtx(ctx).Debug("product page built",
		zap.String("layer", "service"),
		zap.String("method", "ProductPage"),
		zap.String("handle", p.Handle),
		zap.Bool("can_order", page.CanOrder),
		zap.Int("quantity", page.Quote.Quantity),
	)
	return page, nil
}

func (s *service) Quote(ctx context.Context, handle string, query url.Values) (*pricing.Quote, error) {
	page, err := s.ProductPage(ctx, handle, query)
	if err != nil {
		return nil, err
	}
	return &page.Quote, nil
}

func (s *service) Select(ctx context.Context, handle string, query url.Values, patch map[string]string) (*SelectionResult, error) {
	p, err := s.products.GetProduct(ctx, handle)
	if err != nil {
		return nil, err
	}
	return ApplySelection(p, query, patch), nil
}

package handler

import (
	"context"
	"net/url"
	"sync"

	"bagstore/internal/cache"
	"bagstore/internal/checkout"
	"bagstore/internal/collection"
	"bagstore/internal/pricing"
	"bagstore/internal/product"
	"bagstore/internal/review"
	"bagstore/internal/storefront"

	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProduct(ctx context.Context, handle string) (*product.Product, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) Recommendations(ctx context.Context, handle string) ([]*product.Product, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) List(ctx context.Context) ([]*collection.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.Collection), args.Error(1)
}

func (m *MockCollectionService) Get(ctx context.Context, handle string) (*collection.Collection, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Collection), args.Error(1)
}

func (m *MockCollectionService) Products(ctx context.Context, handle string, sort product.Sort) (*collection.WithProducts, error) {
	args := m.Called(ctx, handle, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.WithProducts), args.Error(1)
}

type MockStorefrontService struct {
	mock.Mock
}

func (m *MockStorefrontService) ProductPage(ctx context.Context, handle string, query url.Values) (*storefront.Page, error) {
	args := m.Called(ctx, handle, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.Page), args.Error(1)
}

func (m *MockStorefrontService) Quote(ctx context.Context, handle string, query url.Values) (*pricing.Quote, error) {
	args := m.Called(ctx, handle, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Quote), args.Error(1)
}

func (m *MockStorefrontService) Select(ctx context.Context, handle string, query url.Values, patch map[string]string) (*storefront.SelectionResult, error) {
	args := m.Called(ctx, handle, query, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.SelectionResult), args.Error(1)
}

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, handle string, query url.Values) (*checkout.Order, error) {
	args := m.Called(ctx, handle, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Order), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Feed(ctx context.Context) *review.Feed {
	args := m.Called(ctx)
	return args.Get(0).(*review.Feed)
}

// recordingCache remembers every tag it was asked to drop.
type recordingCache struct {
	mu   sync.Mutex
	tags []cache.Tag
}

func (c *recordingCache) Revalidate(tags ...cache.Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags = append(c.tags, tags...)
}

func (c *recordingCache) Tags() []cache.Tag {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]cache.Tag(nil), c.tags...)
}

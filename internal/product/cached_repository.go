package product

import (
	"context"
	"fmt"

	"bagstore/internal/cache"
)

type cachedRepository struct {
	next  Repository
	store *cache.Store
}

// NewCachedRepository memoises lookups under cache.TagProducts until the tag
// is revalidated or the entry expires.
func NewCachedRepository(next Repository, store *cache.Store) Repository {
	return &cachedRepository{next: next, store: store}
}

func (r *cachedRepository) GetByHandle(ctx context.Context, handle string) (*Product, error) {
	return cache.GetOrLoad(r.store, cache.TagProducts, "product:"+handle, func() (*Product, error) {
		return r.next.GetByHandle(ctx, handle)
	})
}

func (r *cachedRepository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	key := fmt.Sprintf("list:%s|%s|%s", opts.Query, opts.Tag, opts.Sort)
	return cache.GetOrLoad(r.store, cache.TagProducts, key, func() ([]*Product, error) {
		return r.next.List(ctx, opts)
	})
}

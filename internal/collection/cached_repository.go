package collection

import (
	"context"

	"bagstore/internal/cache"
)

type cachedRepository struct {
	next  Repository
	store *cache.Store
}

func NewCachedRepository(next Repository, store *cache.Store) Repository {
	return &cachedRepository{next: next, store: store}
}

func (r *cachedRepository) GetByHandle(ctx context.Context, handle string) (*Collection, error) {
	return cache.GetOrLoad(r.store, cache.TagCollections, "collection:"+handle, func() (*Collection, error) {
		return r.next.GetByHandle(ctx, handle)
	})
}

func (r *cachedRepository) List(ctx context.Context) ([]*Collection, error) {
	return cache.GetOrLoad(r.store, cache.TagCollections, "list", func() ([]*Collection, error) {
		return r.next.List(ctx)
	})
}

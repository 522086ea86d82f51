package review

import (
	"context"

	"bagstore/internal/cache"
)

type cachedFetcher struct {
	next  Fetcher
	store *cache.Store
}

// NewCachedFetcher keeps the last successful feed under cache.TagReviews.
// Failures are not cached, so the next request retries the live source.
func NewCachedFetcher(next Fetcher, store *cache.Store) Fetcher {
	return &cachedFetcher{next: next, store: store}
}

func (f *cachedFetcher) Fetch(ctx context.Context) (*Feed, error) {
	return cache.GetOrLoad(f.store, cache.TagReviews, "feed", func() (*Feed, error) {
		return f.next.Fetch(ctx)
	})
}

package cache

import (
	"sync"
	"time"

	"bagstore/internal/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Tag groups cached entries so they can be revalidated together.
type Tag string

const (
	TagProducts    Tag = "products"
	TagCollections Tag = "collections"
	TagReviews     Tag = "reviews"
)

const (
	DefaultSize = 256
	DefaultTTL  = 24 * time.Hour
)

// Store is a set of expiring LRU caches, one per tag.
type Store struct {
	mu   sync.Mutex
	size int
	ttl  time.Duration
	lrus map[Tag]*expirable.LRU[string, any]

	hits   metrics.Counter
	misses metrics.Counter
}

// Stats is a snapshot of lookup outcomes since the store was created.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

func New(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		size: size,
		ttl:  ttl,
		lrus: make(map[Tag]*expirable.LRU[string, any]),
	}
}

func (s *Store) lru(tag Tag) *expirable.LRU[string, any] {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lrus[tag]
	if !ok {
		l = expirable.NewLRU[string, any](s.size, nil, s.ttl)
		s.lrus[tag] = l
	}
	return l
}

// Revalidate drops every entry stored under the given tags.
func (s *Store) Revalidate(tags ...Tag) {
	for _, t := range tags {
		s.lru(t).Purge()
	}
}

// Len reports the number of live entries under a tag.
func (s *Store) Len(tag Tag) int {
	return s.lru(tag).Len()
}

func (s *Store) Stats() Stats {
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load()}
}

// GetOrLoad returns the cached value for key or stores the result of load.
// Errors are never cached.
func GetOrLoad[T any](s *Store, tag Tag, key string, load func() (T, error)) (T, error) {
	l := s.lru(tag)
	if v, ok := l.Get(key); ok {
		if typed, ok := v.(T); ok {
			s.hits.Inc()
			return typed, nil
		}
	}
	s.misses.Inc()

	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	l.Add(key, v)
	return v, nil
}

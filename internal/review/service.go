package review

import (
	"context"

	"bagstore/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Feed(ctx context.Context) *Feed
}

type service struct {
	live   Fetcher
	static []Review
}

// NewService serves live reviews when live is non-nil and reachable, else the
// static list. The static list is owned by the service and never modified.
func NewService(live Fetcher, static []Review) Service {
	return &service{live: live, static: static}
}

func (s *service) Feed(ctx context.Context) *Feed {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Feed"),
	)

	if s.live != nil {
		feed, err := s.live.Fetch(ctx)
		if err == nil && len(feed.Reviews) > 0 {
			return feed
		}
		if err != nil {
			log.Warn("falling back to static reviews", zap.Error(err))
		}
	}

	reviews := make([]Review, len(s.static))
	copy(reviews, s.static)
	return &Feed{
		Source:  SourceStatic,
		Rating:  Average(reviews),
		Total:   len(reviews),
		Reviews: reviews,
	}
}

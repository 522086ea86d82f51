package review

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bagstore/internal/logger"
	"bagstore/internal/retry"

	"go.uber.org/zap"
)

const (
	placesBaseURL = "https://maps.googleapis.com/maps/api/place/details/json"
	placesFields  = "reviews,rating,user_ratings_total"
)

// Fetcher returns the live review feed for the store.
type Fetcher interface {
	Fetch(ctx context.Context) (*Feed, error)
}

type placesClient struct {
	apiKey     string
	placeID    string
	baseURL    string
	httpClient *http.Client
	retry      retry.Config
}

func NewPlacesClient(apiKey, placeID string) Fetcher {
	if apiKey == "" {
		logger.L().Warn("Google Places API key is empty, live reviews disabled")
	}
	return &placesClient{
		apiKey:  apiKey,
		placeID: placeID,
		baseURL: placesBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		retry: retry.Config{
			MaxAttempts: 3,
			Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
		},
	}
}

func (c *placesClient) Fetch(ctx context.Context) (*Feed, error) {
	if c.apiKey == "" {
		return nil, ErrPlacesNotConfigured
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "places"),
		zap.String("place_id", c.placeID),
	)

	feed, err := retry.DoWithResult(ctx, c.retry, func() (*Feed, error) {
		return c.fetchOnce(ctx)
	})
	if err != nil {
		log.Error("google places fetch failed", zap.Error(err))
		return nil, err
	}

	log.Info("google places reviews fetched", zap.Int("count", len(feed.Reviews)))
	return feed, nil
}

func (c *placesClient) fetchOnce(ctx context.Context) (*Feed, error) {
	q := url.Values{}
	q.Set("place_id", c.placeID)
	q.Set("fields", placesFields)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &retry.Permanent{Err: fmt.Errorf("%w: %w", ErrPlacesRequest, err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlacesRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrPlacesRequest, err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: status %d: %s", ErrPlacesRequest, resp.StatusCode, body)
		if resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
			return nil, &retry.Permanent{Err: err}
		}
		return nil, err
	}

	var res placeDetailsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &retry.Permanent{Err: fmt.Errorf("%w: decode: %w", ErrPlacesRequest, err)}
	}
	if res.Status != "" && res.Status != "OK" {
		return nil, &retry.Permanent{Err: fmt.Errorf("%w: %s %s", ErrPlacesStatus, res.Status, res.ErrorMessage)}
	}

	feed := &Feed{
		Source:  SourceGoogle,
		Rating:  res.Result.Rating,
		Total:   res.Result.UserRatingsTotal,
		Reviews: make([]Review, 0, len(res.Result.Reviews)),
	}
	for _, r := range res.Result.Reviews {
		feed.Reviews = append(feed.Reviews, Review{
			Author:          r.AuthorName,
			Rating:          r.Rating,
			Text:            r.Text,
			RelativeTime:    r.RelativeTimeDescription,
			Time:            r.Time,
			ProfilePhotoURL: r.ProfilePhotoURL,
		})
	}
	return feed, nil
}

package datasource

import (
	"context"
	"fmt"

	"weather-widget/models"

	"golang.org/x/time/rate"
)

// RateLimitedSource wraps a WeatherSource with rate limiting.
// Calls wait for a token; nothing is retried.
type RateLimitedSource struct {
	source  WeatherSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedSource creates a new rate limited weather source
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedSource(source WeatherSource, rps float64, burst int) *RateLimitedSource {
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchWeatherData fetches weather data, respecting rate limits
func (r *RateLimitedSource) FetchWeatherData(ctx context.Context, location string) (models.WeatherRecord, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherRecord{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	return r.source.FetchWeatherData(ctx, location)
}

// Name returns the source name
func (r *RateLimitedSource) Name() string {
	return r.name
}

var _ WeatherSource = (*RateLimitedSource)(nil)

package datasource

import (
	"context"
	"errors"
	"fmt"

	"weather-widget/models"
)

// WeatherSource defines the interface for any current-weather provider
type WeatherSource interface {
	Name() string
	FetchWeatherData(ctx context.Context, location string) (models.WeatherRecord, error)
}

// ErrTransport marks failures where no usable provider answer was received:
// the request could not be sent, or the body could not be read or parsed.
var ErrTransport = errors.New("transport failure")

// HTTPError is a failure reported by the provider itself
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsTransport reports whether err is a transport failure
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// AsHTTPError extracts a provider-reported error from err
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

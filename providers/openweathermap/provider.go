package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-widget/datasource"
	"weather-widget/models"
	"weather-widget/units"
)

// DefaultBaseURL is the OpenWeatherMap v2.5 API root
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapSource is an implementation of the WeatherSource interface for OpenWeatherMap
type OpenWeatherMapSource struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	location *time.Location
}

// Ensure OpenWeatherMapSource implements datasource.WeatherSource
var _ datasource.WeatherSource = (*OpenWeatherMapSource)(nil)

// Option configures an OpenWeatherMapSource
type Option func(*OpenWeatherMapSource)

// WithBaseURL points the source at a different API root
func WithBaseURL(baseURL string) Option {
	return func(o *OpenWeatherMapSource) {
		o.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(o *OpenWeatherMapSource) {
		o.client = client
	}
}

// WithLocation sets the time zone used for observation times
func WithLocation(loc *time.Location) Option {
	return func(o *OpenWeatherMapSource) {
		o.location = loc
	}
}

// NewOpenWeatherMapSource creates a new OpenWeatherMap data source
func NewOpenWeatherMapSource(apiKey string, opts ...Option) *OpenWeatherMapSource {
	o := &OpenWeatherMapSource{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		location: time.Local,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Name returns the name of this data source
func (o *OpenWeatherMapSource) Name() string {
	return "OpenWeatherMap"
}

// OpenWeatherMapResponse represents the current weather API response structure
type OpenWeatherMapResponse struct {
	Dt      int64 `json:"dt"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure float64 `json:"pressure"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Visibility float64 `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"` // Cloudiness percentage
	} `json:"clouds"`
	Base string `json:"base"`
	Name string `json:"name"`
}

// errorResponse is the body sent with non-2xx statuses
type errorResponse struct {
	Message string `json:"message"`
}

// FetchWeatherData fetches current weather from the OpenWeatherMap API.
// Provider failures come back as *datasource.HTTPError; anything that
// prevents reading a provider answer wraps datasource.ErrTransport.
func (o *OpenWeatherMapSource) FetchWeatherData(ctx context.Context, location string) (models.WeatherRecord, error) {
	endpoint := fmt.Sprintf("%s/weather", o.baseURL)
	params := url.Values{}
	params.Add("q", location)
	params.Add("units", "metric")
	params.Add("appid", o.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.WeatherRecord{}, fmt.Errorf("failed to create request: %w", errors.Join(datasource.ErrTransport, err))
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return models.WeatherRecord{}, fmt.Errorf("failed to send request: %w", errors.Join(datasource.ErrTransport, err))
	}
	defer resp.Body.Close()

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherRecord{}, fmt.Errorf("failed to read response body: %w", errors.Join(datasource.ErrTransport, err))
	}

	// The body is JSON whatever the status
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if err := json.Unmarshal(rawData, &errResp); err != nil {
			return models.WeatherRecord{}, fmt.Errorf("failed to parse error response (status %d): %w",
				resp.StatusCode, errors.Join(datasource.ErrTransport, err))
		}
		return models.WeatherRecord{}, &datasource.HTTPError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	var owmResp OpenWeatherMapResponse
	if err := json.Unmarshal(rawData, &owmResp); err != nil {
		return models.WeatherRecord{}, fmt.Errorf("failed to parse API response: %w", errors.Join(datasource.ErrTransport, err))
	}

	return o.normalize(location, owmResp)
}

// normalize builds the display record from a successful response
func (o *OpenWeatherMapSource) normalize(location string, owmResp OpenWeatherMapResponse) (models.WeatherRecord, error) {
	if len(owmResp.Weather) == 0 {
		return models.WeatherRecord{}, fmt.Errorf("response for %s has no weather conditions: %w", location, datasource.ErrTransport)
	}

	return models.WeatherRecord{
		Provider:        o.Name(),
		Location:        location,
		ObservationTime: units.ObservationTime(owmResp.Dt, o.location),
		Description:     owmResp.Weather[0].Description,
		Temperature:     units.Temperature(owmResp.Main.Temp),
		Pressure:        units.Pressure(owmResp.Main.Pressure),
		Humidity:        units.Percent(owmResp.Main.Humidity),
		Visibility:      units.Distance(owmResp.Visibility),
		WindSpeed:       units.Speed(owmResp.Wind.Speed),
		Clouds:          units.Percent(owmResp.Clouds.All),
		Base:            owmResp.Base,
		Loaded:          true,
	}, nil
}

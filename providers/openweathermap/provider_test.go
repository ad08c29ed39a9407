package openweathermap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-widget/datasource"
)

const londonBody = `{
	"coord": {"lon": -0.1257, "lat": 51.5085},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"base": "stations",
	"main": {"temp": 15, "feels_like": 14.5, "pressure": 1012, "humidity": 81},
	"visibility": 10000,
	"wind": {"speed": 4.12, "deg": 240},
	"clouds": {"all": 75},
	"dt": 1709647629,
	"name": "London",
	"cod": 200
}`

func newTestSource(t *testing.T, handler http.HandlerFunc) *OpenWeatherMapSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOpenWeatherMapSource("test-key", WithBaseURL(server.URL+"/data/2.5/"), WithLocation(time.UTC))
}

func TestFetchWeatherDataSuccess(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		q := r.URL.Query()
		gotQuery = map[string]string{"q": q.Get("q"), "units": q.Get("units"), "appid": q.Get("appid")}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(londonBody))
	})

	rec, err := src.FetchWeatherData(context.Background(), "London")
	if err != nil {
		t.Fatalf("FetchWeatherData failed: %v", err)
	}

	if gotPath != "/data/2.5/weather" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery["q"] != "London" || gotQuery["units"] != "metric" || gotQuery["appid"] != "test-key" {
		t.Errorf("query = %v", gotQuery)
	}

	checks := map[string][2]string{
		"ObservationTime": {rec.ObservationTime, "3/5/2024, 2:07:09 PM"},
		"Description":     {rec.Description, "light rain"},
		"Temperature":     {rec.Temperature, "15 °C"},
		"Pressure":        {rec.Pressure, "1012hPa"},
		"Humidity":        {rec.Humidity, "81%"},
		"Visibility":      {rec.Visibility, "10km"},
		"WindSpeed":       {rec.WindSpeed, "4.12m/s"},
		"Clouds":          {rec.Clouds, "75%"},
		"Base":            {rec.Base, "stations"},
		"Provider":        {rec.Provider, "OpenWeatherMap"},
		"Location":        {rec.Location, "London"},
	}
	for field, pair := range checks {
		if pair[0] != pair[1] {
			t.Errorf("%s = %q, want %q", field, pair[0], pair[1])
		}
	}
	if !rec.Loaded {
		t.Error("record should be marked loaded")
	}
}

func TestFetchWeatherDataEscapesQuery(t *testing.T) {
	var rawQuery string
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.Query().Get("q")
		w.Write([]byte(londonBody))
	})

	if _, err := src.FetchWeatherData(context.Background(), "new,york"); err != nil {
		t.Fatalf("FetchWeatherData failed: %v", err)
	}
	if rawQuery != "new,york" {
		t.Errorf("q = %q, want new,york", rawQuery)
	}
}

func TestFetchWeatherDataHTTPError(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	})

	_, err := src.FetchWeatherData(context.Background(), "Atlantis")
	if err == nil {
		t.Fatal("expected error")
	}

	httpErr, ok := datasource.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusNotFound || httpErr.Message != "city not found" {
		t.Errorf("unexpected HTTPError %+v", httpErr)
	}
	if datasource.IsTransport(err) {
		t.Error("provider error must not be a transport failure")
	}
}

func TestFetchWeatherDataTransportErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"malformed success body", http.StatusOK, `{"weather": [`},
		{"malformed error body", http.StatusUnauthorized, `<html>nope</html>`},
		{"no weather entry", http.StatusOK, `{"weather": [], "main": {"temp": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := src.FetchWeatherData(context.Background(), "London")
			if !datasource.IsTransport(err) {
				t.Fatalf("expected transport error, got %v", err)
			}
			if _, ok := datasource.AsHTTPError(err); ok {
				t.Error("transport failure must not carry an HTTPError")
			}
		})
	}
}

func TestFetchWeatherDataUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	src := NewOpenWeatherMapSource("test-key", WithBaseURL(baseURL))
	_, err := src.FetchWeatherData(context.Background(), "London")
	if !errors.Is(err, datasource.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestFetchWeatherDataCanceledContext(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(londonBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.FetchWeatherData(ctx, "London")
	if !datasource.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

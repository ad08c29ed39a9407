package datasource

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	// Provider configuration
	OpenWeatherMap struct {
		APIKey         string `json:"apiKey"`
		BaseURL        string `json:"baseURL"`
		TimeoutSeconds int    `json:"timeoutSeconds"`
	} `json:"openWeatherMap"`

	// Protects the provider quota; requests wait, they are never retried
	RateLimit struct {
		Enabled bool    `json:"enabled"`
		RPS     float64 `json:"rps"`
		Burst   int     `json:"burst"`
	} `json:"rateLimit"`

	// Value preset in the search field and submitted once at startup
	DefaultLocation string `json:"defaultLocation"`

	// IANA zone used for observation times and the day/night theme
	TimeZone string `json:"timeZone"`

	// Error banner animation
	Banner struct {
		DurationMs int `json:"durationMs"`
		FrameMs    int `json:"frameMs"`
	} `json:"banner"`

	// Show nothing at all when the provider cannot be reached
	SilentTransportErrors bool `json:"silentTransportErrors"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenWeatherMap.BaseURL = "https://api.openweathermap.org/data/2.5"
	config.OpenWeatherMap.TimeoutSeconds = 10
	config.RateLimit.Enabled = true
	// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
	config.RateLimit.RPS = 1.0
	config.RateLimit.Burst = 5
	config.DefaultLocation = "London"
	config.Banner.DurationMs = 3000
	config.Banner.FrameMs = 50
	return config
}

// LoadConfig loads configuration from a JSON file on top of the defaults.
// A missing file is not an error. Environment variables (optionally from
// a .env file) override file values.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	switch {
	case err == nil:
		defer file.Close()
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Config file %s not found, using defaults", filename)
	default:
		return nil, fmt.Errorf("failed to open config %s: %w", filename, err)
	}

	applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables that are already set win.
func LoadEnvFile(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func applyEnv(config *Config) {
	if v := os.Getenv("OPENWEATHERMAP_API_KEY"); v != "" {
		config.OpenWeatherMap.APIKey = v
	}
	if v := os.Getenv("OPENWEATHERMAP_BASE_URL"); v != "" {
		config.OpenWeatherMap.BaseURL = strings.TrimRight(v, "/")
	}
	if v, ok := os.LookupEnv("WIDGET_DEFAULT_LOCATION"); ok {
		config.DefaultLocation = v
	}
	if v := os.Getenv("WIDGET_TIMEZONE"); v != "" {
		config.TimeZone = v
	}
}

// Validate checks the configuration for values the widget cannot run with
func (c *Config) Validate() error {
	if c.OpenWeatherMap.APIKey == "" {
		return errors.New("no OpenWeatherMap API key provided")
	}
	if c.OpenWeatherMap.BaseURL == "" {
		return errors.New("no OpenWeatherMap base URL configured")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rps=%v burst=%d", c.RateLimit.RPS, c.RateLimit.Burst)
	}
	if c.Banner.DurationMs <= 0 || c.Banner.FrameMs <= 0 {
		return fmt.Errorf("invalid banner timing: duration=%dms frame=%dms", c.Banner.DurationMs, c.Banner.FrameMs)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured time zone, defaulting to local time
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Timeout returns the provider request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.OpenWeatherMap.TimeoutSeconds) * time.Second
}

// BannerDuration returns the error banner animation length
func (c *Config) BannerDuration() time.Duration {
	return time.Duration(c.Banner.DurationMs) * time.Millisecond
}

// BannerFrame returns the interval between banner animation frames
func (c *Config) BannerFrame() time.Duration {
	return time.Duration(c.Banner.FrameMs) * time.Millisecond
}

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-widget/api"
	"weather-widget/datasource"
	"weather-widget/flash"
	"weather-widget/form"
	"weather-widget/page"
	"weather-widget/providers/openweathermap"
	"weather-widget/theme"
)

func main() {
	// Load environment variables from .env file
	datasource.LoadEnvFile()

	// Parse command line arguments
	port := flag.Int("port", 8080, "Port to run the server on")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loc, err := config.Location()
	if err != nil {
		log.Fatalf("Failed to load time zone: %v", err)
	}

	var source datasource.WeatherSource = openweathermap.NewOpenWeatherMapSource(
		config.OpenWeatherMap.APIKey,
		openweathermap.WithBaseURL(config.OpenWeatherMap.BaseURL),
		openweathermap.WithHTTPClient(&http.Client{Timeout: config.Timeout()}),
		openweathermap.WithLocation(loc),
	)

	// Apply rate limiting if enabled
	if *enableRateLimiting && config.RateLimit.Enabled {
		source = datasource.NewRateLimitedSource(source, config.RateLimit.RPS, config.RateLimit.Burst)
		log.Printf("Applied rate limiting to %s: %.2f req/s, burst %d",
			source.Name(), config.RateLimit.RPS, config.RateLimit.Burst)
	}

	doc := page.NewWidget()

	// The theme is picked once for the whole session
	selected := theme.Apply(doc, time.Now().In(loc))
	log.Printf("Using %s theme", selected.Name)

	banner := flash.NewController(doc, page.HTTPBannerID, config.BannerDuration(), config.BannerFrame())
	orch := form.NewOrchestrator(doc, source, banner, form.Options{
		SilentTransportErrors: config.SilentTransportErrors,
		DetachBanner:          true,
	})

	server := api.NewServer(doc, orch, selected, *port)

	// Load the default location once, as if the preset field value was submitted
	server.SetInput(config.DefaultLocation)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout())
		defer cancel()
		result := orch.Submit(ctx, config.DefaultLocation)
		log.Printf("Default location %q: %s", config.DefaultLocation, result.Outcome)
	}()

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	log.Printf("Shutting down due to %s signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Let running banner animations finish
	orch.Wait()
	log.Println("Shutdown complete")
}

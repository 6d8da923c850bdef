// Package main provides the entrypoint for the TripWeaver API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tripweaver/tripweaver/internal/api"
	"github.com/tripweaver/tripweaver/internal/api/middleware"
	"github.com/tripweaver/tripweaver/internal/forecast"
	"github.com/tripweaver/tripweaver/internal/forecast/openweathermap"
	"github.com/tripweaver/tripweaver/internal/generation/groq"
	"github.com/tripweaver/tripweaver/internal/itinerary"
	"github.com/tripweaver/tripweaver/internal/provider/resilience"
	"github.com/tripweaver/tripweaver/internal/search"
	"github.com/tripweaver/tripweaver/internal/search/tavily"
	"github.com/tripweaver/tripweaver/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "tripweaver-api"

	// Load .env for local development; ignored when absent
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting TripWeaver API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Provider-level metrics (cache hits, upstream call durations)
	providerMetrics, err := telemetry.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	// Provider registry backs the ops status endpoint
	registry := resilience.NewRegistry()

	newProviderClient := func(name string) *resilience.Client {
		cfg := resilience.DefaultClientConfig(name)
		cfg.CircuitBreaker.OnStateChange = resilience.LogStateChanges(log)
		return registry.Register(name, resilience.NewClient(cfg))
	}

	// Initialize the generation provider
	groqAPIKey := os.Getenv("GROQ_API_KEY")
	if groqAPIKey == "" {
		log.Warn().Msg("GROQ_API_KEY not set - itinerary endpoints will fail")
	}
	groqClient := groq.NewClient(groq.ClientConfig{
		APIKey:     groqAPIKey,
		Model:      os.Getenv("GROQ_MODEL"),
		HTTPClient: newProviderClient(groq.ProviderName),
		Logger:     log,
	})
	log.Info().Str("provider", groqClient.Name()).Msg("generation provider initialized")

	// Initialize the forecast provider and service
	owmAPIKey := os.Getenv("OPENWEATHERMAP_API_KEY")
	if owmAPIKey == "" {
		log.Warn().Msg("OPENWEATHERMAP_API_KEY not set - rainy-day planning disabled")
	}
	owmClient := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     owmAPIKey,
		HTTPClient: newProviderClient(openweathermap.ProviderName),
		Logger:     log,
	})
	forecastService := forecast.NewService(forecast.ServiceConfig{
		Provider: owmClient,
		Logger:   log,
		Metrics:  providerMetrics,
	})
	log.Info().Str("provider", owmClient.Name()).Msg("forecast service initialized")

	// Initialize the search provider and service
	tavilyAPIKey := os.Getenv("TAVILY_API_KEY")
	if tavilyAPIKey == "" {
		log.Warn().Msg("TAVILY_API_KEY not set - activity search will fail")
	}
	tavilyClient := tavily.NewClient(tavily.ClientConfig{
		APIKey:     tavilyAPIKey,
		HTTPClient: newProviderClient(tavily.ProviderName),
		Logger:     log,
	})
	searchService := search.NewService(search.ServiceConfig{
		Provider: tavilyClient,
		Logger:   log,
	})
	log.Info().Str("provider", tavilyClient.Name()).Msg("search service initialized")

	// Initialize the itinerary service
	itineraryService := itinerary.NewService(itinerary.ServiceConfig{
		Generator: groqClient,
		Forecast:  forecastService,
		Logger:    log,
	})
	log.Info().Msg("itinerary service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:          Version,
		BuildTime:        BuildTime,
		Logger:           log,
		ServiceName:      serviceName,
		Metrics:          metrics,
		ItineraryService: itineraryService,
		SearchService:    searchService,
		Registry:         registry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

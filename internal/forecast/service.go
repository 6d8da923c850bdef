// Package forecast builds the weather calendar for a trip: the next N
// calendar dates and the subset of them forecast as rainy for a location.
package forecast

import (
	"context"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/tripweaver/tripweaver/internal/telemetry"
)

const isoDate = "2006-01-02"

// Provider defines the interface for forecast data providers.
type Provider interface {
	// GetForecast fetches a multi-day periodic forecast for a location name.
	GetForecast(ctx context.Context, location string) (*Forecast, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the forecast service.
type ServiceConfig struct {
	// Provider is the forecast data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// Clock supplies "today" for calendar construction. Defaults to the
	// real clock; tests inject a fake.
	Clock clockwork.Clock

	// CacheTTL is how long to cache provider forecasts per location
	// (default: 10 minutes).
	CacheTTL time.Duration

	// RainySampleThreshold is how many rain-bearing samples a date needs
	// before it is flagged rainy (default: 2).
	RainySampleThreshold int

	// Metrics records provider call and cache metrics (optional).
	Metrics *telemetry.ProviderMetrics
}

// Service reduces provider forecasts to per-date rain flags, with caching.
type Service struct {
	provider  Provider
	logger    zerolog.Logger
	clock     clockwork.Clock
	forecasts *cache.Cache
	threshold int
	metrics   *telemetry.ProviderMetrics
}

// NewService creates a new forecast service.
func NewService(cfg ServiceConfig) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	threshold := cfg.RainySampleThreshold
	if threshold == 0 {
		threshold = 2
	}

	return &Service{
		provider:  cfg.Provider,
		logger:    cfg.Logger,
		clock:     clock,
		forecasts: cache.New(cacheTTL, 2*cacheTTL),
		threshold: threshold,
		metrics:   cfg.Metrics,
	}
}

// Calendar returns the next days calendar dates starting from today, in
// ISO YYYY-MM-DD form.
func (s *Service) Calendar(days int) []string {
	today := s.clock.Now().UTC()
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(isoDate))
	}
	return dates
}

// RainyDates returns the subset of the trip calendar forecast as rainy:
// dates where at least the threshold number of forecast samples report a
// rain-bearing condition.
func (s *Service) RainyDates(ctx context.Context, location string, days int) ([]string, error) {
	forecast, err := s.getForecast(ctx, location)
	if err != nil {
		return nil, err
	}

	rainSamples := make(map[string]int)
	for _, sample := range forecast.Samples {
		if sample.Condition.RainBearing() {
			rainSamples[sample.Time.UTC().Format(isoDate)]++
		}
	}

	var rainy []string
	for _, date := range s.Calendar(days) {
		if rainSamples[date] >= s.threshold {
			rainy = append(rainy, date)
		}
	}
	return rainy, nil
}

// RainyDayNumbers maps rainy calendar dates to 1-based trip day numbers.
// Fail-open: any provider failure degrades to an empty rainy set so the
// trip is planned as if no rain were forecast; the error is logged and
// never propagated.
func (s *Service) RainyDayNumbers(ctx context.Context, location string, days int) ([]int, []string) {
	rainy, err := s.RainyDates(ctx, location, days)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("location", location).
			Msg("forecast unavailable, continuing without rainy days")
		return nil, nil
	}

	index := make(map[string]int, days)
	for i, date := range s.Calendar(days) {
		index[date] = i + 1
	}

	numbers := make([]int, 0, len(rainy))
	for _, date := range rainy {
		numbers = append(numbers, index[date])
	}
	return numbers, rainy
}

// getForecast returns a cached forecast for the location, fetching from
// the provider on miss.
func (s *Service) getForecast(ctx context.Context, location string) (*Forecast, error) {
	key := strings.ToLower(strings.TrimSpace(location))

	if cached, ok := s.forecasts.Get(key); ok {
		s.metrics.RecordCacheHit(s.provider.Name(), "get-forecast")
		return cached.(*Forecast), nil
	}
	s.metrics.RecordCacheMiss(s.provider.Name(), "get-forecast")

	s.logger.Debug().
		Str("location", location).
		Str("provider", s.provider.Name()).
		Msg("fetching forecast from provider")

	start := time.Now()
	forecast, err := s.provider.GetForecast(ctx, location)
	s.metrics.RecordRequest(s.provider.Name(), "get-forecast", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	s.forecasts.Set(key, forecast, cache.DefaultExpiration)
	return forecast, nil
}

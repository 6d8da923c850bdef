package search

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const defaultMaxResults = 5

// ServiceConfig holds configuration for the search service.
type ServiceConfig struct {
	// Provider is the search backend.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// Clock supplies the current date mentioned in queries.
	Clock clockwork.Clock

	// MaxResults caps results per query (default: 5).
	MaxResults int
}

// Service finds current tourist activities for a location.
type Service struct {
	provider   Provider
	logger     zerolog.Logger
	clock      clockwork.Clock
	maxResults int
}

// NewService creates a new search service.
func NewService(cfg ServiceConfig) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	maxResults := cfg.MaxResults
	if maxResults == 0 {
		maxResults = defaultMaxResults
	}
	return &Service{
		provider:   cfg.Provider,
		logger:     cfg.Logger,
		clock:      clock,
		maxResults: maxResults,
	}
}

// TopActivities searches for current tourist activities in a location.
func (s *Service) TopActivities(ctx context.Context, location string) (string, []Result, error) {
	query := fmt.Sprintf(
		"What are the top activities for tourists to do in %s, considering it is %s? "+
			"Focus on unique cultural experiences, historical sites, and local attractions.",
		location,
		s.clock.Now().Format("Monday, 2 January 2006"),
	)

	start := time.Now()
	answer, results, err := s.provider.Search(ctx, query, s.maxResults)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("location", location).
			Str("provider", s.provider.Name()).
			Msg("activity search failed")
		return "", nil, err
	}

	s.logger.Debug().
		Str("location", location).
		Int("results", len(results)).
		Dur("duration", time.Since(start)).
		Msg("activity search completed")

	return answer, results, nil
}

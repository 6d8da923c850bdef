// Package itinerary implements the trip-planning core: prompt construction,
// parsing of generated itinerary text, outdoor classification,
// weather-constrained day reassignment, and suggestion extraction.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tripweaver/tripweaver/internal/generation"
)

// Completion temperatures. Revisions run cooler than generation so the
// model stays close to the original itinerary.
const (
	generateTemperature = 0.7
	tweakTemperature    = 0.4
)

// RainyDaySource reports which day numbers of a trip span fall on
// forecast-rainy dates. Implementations are fail-open: on forecast
// trouble they return empty results, never an error.
type RainyDaySource interface {
	RainyDayNumbers(ctx context.Context, location string, days int) (dayNumbers []int, dates []string)
}

// ServiceConfig holds configuration for the itinerary service.
type ServiceConfig struct {
	// Generator is the text-generation provider (required).
	Generator generation.Provider

	// Forecast supplies rainy day numbers (required).
	Forecast RainyDaySource

	// Classifier labels activities as outdoor. Defaults to the built-in
	// keyword set.
	Classifier *Classifier

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service produces and revises structured itineraries.
type Service struct {
	generator  generation.Provider
	forecast   RainyDaySource
	classifier *Classifier
	logger     zerolog.Logger
}

// NewService creates a new itinerary service.
func NewService(cfg ServiceConfig) *Service {
	cls := cfg.Classifier
	if cls == nil {
		cls = NewClassifier()
	}
	return &Service{
		generator:  cfg.Generator,
		forecast:   cfg.Forecast,
		classifier: cls,
		logger:     cfg.Logger,
	}
}

// GenerateResult is the outcome of a successful Generate call.
type GenerateResult struct {
	Itinerary   Itinerary `json:"itinerary"`
	Suggestions []string  `json:"suggestions"`
	RainyDates  []string  `json:"rainyDates,omitempty"`
}

// Generate runs the full pipeline: validate, fetch rainy days, generate
// itinerary text, parse, classify, reassign, and extract suggestions.
// It either fully succeeds or fails; no partial itinerary is returned.
func (s *Service) Generate(ctx context.Context, req TripRequest) (*GenerateResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dayCount := req.Duration.DayCount()
	rainyNums, rainyDates := s.forecast.RainyDayNumbers(ctx, req.Location, dayCount)

	s.logger.Debug().
		Str("location", req.Location).
		Int("days", dayCount).
		Ints("rainy_day_numbers", rainyNums).
		Msg("generating itinerary")

	text, err := s.generator.Complete(ctx, generation.Request{
		System:      plannerSystemMessage,
		Prompt:      BuildItineraryPrompt(req, rainyDates),
		Temperature: generateTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}

	days, raw := Parse(text)
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no parseable days in generated text", ErrUpstreamGeneration)
	}

	days = s.classifier.Annotate(days)
	days = Reassign(days, rainyNums, req.RainTolerance, s.classifier)

	return &GenerateResult{
		Itinerary: Itinerary{
			Duration: req.Duration,
			Days:     days,
		},
		Suggestions: Suggestions(raw),
		RainyDates:  rainyDates,
	}, nil
}

// Suggest asks the generator for standalone activity suggestions for a
// trip, one per line, without the day-wise structure.
func (s *Service) Suggest(ctx context.Context, req TripRequest) ([]string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	text, err := s.generator.Complete(ctx, generation.Request{
		System:      suggestionSystemMessage,
		Prompt:      BuildSuggestionPrompt(req),
		Temperature: generateTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}

	var suggestions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "*-• \t"))
		if line != "" {
			suggestions = append(suggestions, line)
		}
	}
	return suggestions, nil
}

// TweakRequest asks for a revision of a previously produced itinerary.
type TweakRequest struct {
	Request     TripRequest `json:"request"`
	Itinerary   Itinerary   `json:"itinerary"`
	Instruction string      `json:"instruction"`
}

// Tweak revises an itinerary per a free-text instruction. The provider is
// required to answer with itinerary-schema JSON; anything else is an
// ErrMalformedOutput, never trusted blindly.
func (s *Service) Tweak(ctx context.Context, req TweakRequest) (*Itinerary, error) {
	req.Request.Normalize()
	if err := req.Request.Validate(); err != nil {
		return nil, err
	}
	var fields []FieldError
	if strings.TrimSpace(req.Instruction) == "" {
		fields = append(fields, FieldError{Field: "instruction", Message: "instruction is required"})
	}
	if len(req.Itinerary.Days) == 0 {
		fields = append(fields, FieldError{Field: "itinerary.days", Message: "itinerary to revise must have at least one day"})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	text, err := s.generator.Complete(ctx, generation.Request{
		System:      tweakSystemMessage,
		Prompt:      BuildTweakPrompt(req.Request, req.Itinerary, req.Instruction),
		Temperature: tweakTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}

	var revised Itinerary
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &revised); err != nil {
		s.logger.Warn().Err(err).Msg("tweak output is not valid JSON")
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedOutput)
	}
	if err := revised.ValidateSchema(); err != nil {
		return nil, err
	}

	revised.Days = s.classifier.Annotate(revised.Days)
	return &revised, nil
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models add around JSON output even when told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

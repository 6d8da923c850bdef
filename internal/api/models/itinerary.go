package models

import (
	"github.com/tripweaver/tripweaver/internal/itinerary"
	"github.com/tripweaver/tripweaver/internal/search"
)

// GenerateItineraryResponse is the response for POST /v1/itineraries:generate.
type GenerateItineraryResponse struct {
	Itinerary   itinerary.Itinerary `json:"itinerary"`
	Suggestions []string            `json:"suggestions"`
	RainyDates  []string            `json:"rainyDates,omitempty"`
}

// SuggestActivitiesResponse is the response for POST /v1/itineraries:suggest.
type SuggestActivitiesResponse struct {
	Suggestions []string `json:"suggestions"`
}

// TweakItineraryRequest is the request body for POST /v1/itineraries:tweak.
type TweakItineraryRequest struct {
	Request     itinerary.TripRequest `json:"request"`
	Itinerary   itinerary.Itinerary   `json:"itinerary"`
	Instruction string                `json:"instruction"`
}

// TweakItineraryResponse is the response for POST /v1/itineraries:tweak.
type TweakItineraryResponse struct {
	Itinerary itinerary.Itinerary `json:"itinerary"`
}

// ActivitySearchResponse is the response for GET /v1/activities.
type ActivitySearchResponse struct {
	Location string          `json:"location"`
	Answer   string          `json:"answer,omitempty"`
	Results  []search.Result `json:"results"`
}

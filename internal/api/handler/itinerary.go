// Package handler provides HTTP handlers for the TripWeaver API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripweaver/tripweaver/internal/api/models"
	"github.com/tripweaver/tripweaver/internal/api/response"
	"github.com/tripweaver/tripweaver/internal/itinerary"
)

// ItineraryHandler handles itinerary generation and revision endpoints.
type ItineraryHandler struct {
	service *itinerary.Service
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(service *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

// Generate handles POST /v1/itineraries:generate - plan a trip.
func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input itinerary.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result, err := h.service.Generate(r.Context(), input)
	if err != nil {
		writeItineraryError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.GenerateItineraryResponse{
		Itinerary:   result.Itinerary,
		Suggestions: result.Suggestions,
		RainyDates:  result.RainyDates,
	})
}

// Suggest handles POST /v1/itineraries:suggest - standalone activity ideas.
func (h *ItineraryHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var input itinerary.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	suggestions, err := h.service.Suggest(r.Context(), input)
	if err != nil {
		writeItineraryError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.SuggestActivitiesResponse{Suggestions: suggestions})
}

// Tweak handles POST /v1/itineraries:tweak - revise an existing itinerary.
func (h *ItineraryHandler) Tweak(w http.ResponseWriter, r *http.Request) {
	var input models.TweakItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	revised, err := h.service.Tweak(r.Context(), itinerary.TweakRequest{
		Request:     input.Request,
		Itinerary:   input.Itinerary,
		Instruction: input.Instruction,
	})
	if err != nil {
		writeItineraryError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.TweakItineraryResponse{Itinerary: *revised})
}

// writeItineraryError maps service errors onto Problem responses.
func writeItineraryError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *itinerary.ValidationError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(w, r, "invalid trip request", fieldErrors(verr))
	case errors.Is(err, itinerary.ErrUpstreamGeneration):
		response.BadGateway(w, r, "itinerary generation provider is unavailable")
	case errors.Is(err, itinerary.ErrMalformedOutput):
		response.BadGateway(w, r, "itinerary generation provider returned malformed output")
	default:
		response.InternalError(w, r, "failed to process itinerary request")
	}
}

func fieldErrors(verr *itinerary.ValidationError) []models.FieldError {
	out := make([]models.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, models.FieldError{Field: f.Field, Message: f.Message})
	}
	return out
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tripweaver/tripweaver/internal/api/models"
	"github.com/tripweaver/tripweaver/internal/api/response"
	"github.com/tripweaver/tripweaver/internal/search"
)

// ActivitiesHandler handles the activity discovery endpoint.
type ActivitiesHandler struct {
	service *search.Service
}

// NewActivitiesHandler creates a new ActivitiesHandler.
func NewActivitiesHandler(service *search.Service) *ActivitiesHandler {
	return &ActivitiesHandler{service: service}
}

// Search handles GET /v1/activities - top things to do at a location.
func (h *ActivitiesHandler) Search(w http.ResponseWriter, r *http.Request) {
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		response.BadRequest(w, r, "location query parameter is required", []models.FieldError{
			{Field: "location", Message: "required"},
		})
		return
	}

	answer, results, err := h.service.TopActivities(r.Context(), location)
	if err != nil {
		if errors.Is(err, search.ErrProviderUnavailable) {
			response.BadGateway(w, r, "activity search provider is unavailable")
			return
		}
		response.InternalError(w, r, "failed to search activities")
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=300")
	response.JSON(w, r, http.StatusOK, models.ActivitySearchResponse{
		Location: location,
		Answer:   answer,
		Results:  results,
	})
}

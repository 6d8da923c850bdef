package models_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/tripweaver/internal/api/models"
)

func TestNewBadRequest(t *testing.T) {
	fieldErrors := []models.FieldError{
		{Field: "location", Message: "location is required"},
	}

	p := models.NewBadRequest("trace-123", "invalid trip request", fieldErrors)

	assert.Equal(t, models.ProblemTypeValidation, p.Type)
	assert.Equal(t, 400, p.Status)
	assert.Equal(t, "trace-123", p.TraceID)
	assert.Equal(t, "invalid trip request", p.Detail)
	assert.Equal(t, fieldErrors, p.Errors)
}

func TestNewBadGateway(t *testing.T) {
	p := models.NewBadGateway("trace-456", "generation provider is unavailable")

	assert.Equal(t, models.ProblemTypeUpstream, p.Type)
	assert.Equal(t, 502, p.Status)
	assert.Equal(t, "Upstream provider error", p.Title)
}

func TestProblem_Write(t *testing.T) {
	p := models.NewNotFound("trace-789", "no such resource")
	w := httptest.NewRecorder()

	p.Write(w)

	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	assert.Equal(t, "trace-789", w.Header().Get("X-Request-Id"))

	var decoded models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, models.ProblemTypeNotFound, decoded.Type)
	assert.Equal(t, "no such resource", decoded.Detail)
}

func TestProblem_Builders(t *testing.T) {
	p := models.NewProblem(models.ProblemTypeInternal, "Internal server error", 500, "trace-1").
		WithDetail("something broke").
		WithErrors([]models.FieldError{{Field: "x", Message: "bad"}})

	assert.Equal(t, "something broke", p.Detail)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "x", p.Errors[0].Field)
}

package handler

import (
	"net/http"
	"time"

	"github.com/tripweaver/tripweaver/internal/api/models"
	"github.com/tripweaver/tripweaver/internal/api/response"
	"github.com/tripweaver/tripweaver/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		registry:  registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service is ready unless every provider circuit is open.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatusOK
	if h.registry != nil && h.registry.ProviderCount() > 0 {
		open := 0
		for _, p := range h.registry.GetAllHealth() {
			if p.IsUnhealthy() {
				open++
			}
		}
		if open == h.registry.ProviderCount() {
			status = models.HealthStatusFail
		}
	}

	health := models.Health{
		Status: status,
		Time:   models.Timestamp(time.Now()),
	}
	code := http.StatusOK
	if status == models.HealthStatusFail {
		code = http.StatusServiceUnavailable
	}
	response.JSON(w, r, code, health)
}

// SystemStatus handles GET /v1/ops/status - per-provider circuit status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())

	providers := []models.ProviderStatus{}
	overall := models.HealthStatusOK
	if h.registry != nil {
		for _, p := range h.registry.GetAllHealth() {
			providers = append(providers, providerStatus(p))
			if p.IsUnhealthy() {
				overall = models.HealthStatusDegraded
			} else if p.IsDegraded() && overall == models.HealthStatusOK {
				overall = models.HealthStatusDegraded
			}
		}
	}

	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status:    overall,
		Time:      now,
		Providers: providers,
	})
}

func providerStatus(p *resilience.ProviderHealth) models.ProviderStatus {
	status := models.HealthStatusOK
	switch {
	case p.IsUnhealthy():
		status = models.HealthStatusFail
	case p.IsDegraded():
		status = models.HealthStatusDegraded
	}

	ps := models.ProviderStatus{
		Provider: p.Name,
		Status:   status,
	}
	if p.LastSuccessAt != nil {
		t := models.Timestamp(*p.LastSuccessAt)
		ps.LastSuccessAt = &t
	}
	if p.LastFailureAt != nil {
		t := models.Timestamp(*p.LastFailureAt)
		ps.LastFailureAt = &t
	}
	if p.LastError != "" {
		msg := p.LastError
		ps.Message = &msg
	}
	return ps
}

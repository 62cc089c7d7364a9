package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/bhavesh0907/organization-management-service-backend/utils"
)

const serviceVersion = "1.0.0"

// Pinger is the slice of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckResponse represents health check status
type HealthCheckResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database,omitempty"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime,omitempty"`
}

type HealthHandler struct {
	store     Pinger
	startTime time.Time
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store, startTime: time.Now()}
}

// Root handles GET /: static service identity.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "Organization Management Service",
		"version": serviceVersion,
	})
}

// HealthCheck handles GET /health, including a database ping.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   serviceVersion,
		Uptime:    time.Since(h.startTime).String(),
	}

	code := http.StatusOK
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			response.Status = "unhealthy"
			response.Database = "disconnected"
			code = http.StatusServiceUnavailable
		} else {
			response.Database = "connected"
		}
	}

	utils.RespondWithJSON(w, code, response)
}

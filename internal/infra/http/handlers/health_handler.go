package handlers

import (
	"net/http"
	"time"
)

// HealthChecker é qualquer dependência que sabe dizer se está de pé.
type HealthChecker interface {
	Healthy() bool
}

type HealthHandler struct {
	Version      string
	NotifyDriver string
	RabbitMQ     HealthChecker
	StartTime    time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(version, notifyDriver string, rabbitMQ HealthChecker) *HealthHandler {
	return &HealthHandler{
		Version:      version,
		NotifyDriver: notifyDriver,
		RabbitMQ:     rabbitMQ,
		StartTime:    time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := map[string]string{
		"store":  "healthy",
		"notify": h.NotifyDriver,
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.Healthy() {
			deps["rabbitmq"] = "healthy"
		} else {
			deps["rabbitmq"] = "unhealthy: connection closed"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	if deps["rabbitmq"] != "healthy" && deps["rabbitmq"] != "not configured" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

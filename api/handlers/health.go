// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports service identity and liveness

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"ptt-app-api/api/dto/responses"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	service string
	version string
}

// NewHealthHandler creates a new health handler with the service identity
func NewHealthHandler(service, version string) *HealthHandler {
	return &HealthHandler{
		service: service,
		version: version,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports whether the service is healthy",
		Tags:        []string{"Health"},
	}, h.HealthCheck)
}

// HealthCheckInput defines the input for the HealthCheck operation
type HealthCheckInput struct{}

// HealthCheckOutput defines the output for the HealthCheck operation
type HealthCheckOutput struct {
	Body responses.HealthResponse
}

// HealthCheck handles the GET /health endpoint
func (h *HealthHandler) HealthCheck(ctx context.Context, input *HealthCheckInput) (*HealthCheckOutput, error) {
	return &HealthCheckOutput{
		Body: responses.HealthResponse{
			Status:  "healthy",
			Service: h.service,
			Version: h.version,
		},
	}, nil
}

// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports service status and the configured cache backend

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"feedreader-api/api/dto/responses"
)

// HealthHandler serves GET /health
type HealthHandler struct {
	cacheType string
}

// NewHealthHandler creates a health handler reporting cacheType
func NewHealthHandler(cacheType string) *HealthHandler {
	return &HealthHandler{cacheType: cacheType}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{
		Status:    "ok",
		Cache:     h.cacheType,
		Timestamp: time.Now().Unix(),
	}}, nil
}

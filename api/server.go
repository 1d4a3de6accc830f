// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"ptt-app-api/api/middleware"
	"ptt-app-api/core/interfaces"
)

// Service identity, shared by the OpenAPI info block and /health.
const (
	ServiceName    = "PTT API"
	ServiceVersion = "1.0.0"
)

const serviceDescription = "A web service that wraps around the PTT (parsett) library for parsing torrent titles"

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	// Create Chi router
	router := chi.NewRouter()

	// Configure CORS (should be first middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Allow all origins, matching the original service
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Apply middleware
	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	// Create Huma API configuration
	config := huma.DefaultConfig(ServiceName, ServiceVersion)
	config.Info.Description = serviceDescription

	// Create Huma API with Chi adapter
	// The OpenAPI spec is automatically available at /openapi.json
	// The interactive docs UI is automatically available at /docs
	api := humachi.New(router, config)

	return api, router
}

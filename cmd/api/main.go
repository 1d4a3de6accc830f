// ABOUTME: Main entry point for the PTT API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ptt-app-api/api"
	"ptt-app-api/api/handlers"
	"ptt-app-api/core/interfaces"
	"ptt-app-api/core/title"
	"ptt-app-api/infrastructure/logger/structured"
	"ptt-app-api/infrastructure/parser/ptn"
	"ptt-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := structured.NewLogrusLogger(cfg.Log.Level)
	logger.Info("Starting PTT API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"rate_limit": cfg.RateLimit.Requests,
		"log_level":  cfg.Log.Level,
	})

	// Create the title parser
	parser := ptn.NewParser()

	// Create dependencies container
	deps := interfaces.Dependencies{
		Parser: parser,
		Logger: logger,
	}

	// Create services
	titleService := title.NewTitleService(deps)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	parseHandler := handlers.NewParseHandler(titleService)
	parseHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(api.ServiceName, api.ServiceVersion)
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    ____  ______________   ___    ____  ____
   / __ \/_  __/_  __/   /   |  / __ \/  _/
  / /_/ / / /   / /     / /| | / /_/ // /
 / ____/ / /   / /     / ___ |/ ____// /
/_/     /_/   /_/     /_/  |_/_/   /___/
	`)
}

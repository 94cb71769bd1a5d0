package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pricescope/client/config"
	httpDelivery "github.com/pricescope/client/internal/delivery/http"
	"github.com/pricescope/client/internal/infrastructure/cache"
	"github.com/pricescope/client/internal/infrastructure/compare"
	"github.com/pricescope/client/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceScope Client v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Comparison backend: %s (timeout: %s, limit: %d)",
		cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Backend.ResultLimit)

	// Initialize infrastructure dependencies
	resultCache := cache.NewMemoryCache()
	log.Printf("Result cache TTL: %s", cfg.Cache.TTL)

	compareClient := compare.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Enable debug mode in development environment
	debug := cfg.Server.Environment == "development"
	if debug {
		compareClient.SetDebug(true)
		log.Printf("Compare client debug mode enabled")
	}

	// Initialize usecase layer
	comparisonService := usecase.NewComparisonService(
		compareClient,
		resultCache,
		usecase.ComparisonServiceConfig{
			ResultLimit:        cfg.Backend.ResultLimit,
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)

	suggester := usecase.NewSuggester(nil)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(comparisonService, suggester)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

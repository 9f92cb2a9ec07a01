package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/schappie/backend/config"
	httpDelivery "github.com/schappie/backend/internal/delivery/http"
	"github.com/schappie/backend/internal/infrastructure/boosts"
	"github.com/schappie/backend/internal/infrastructure/cache"
	"github.com/schappie/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Schappie Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog cache TTL: %s", cfg.Cache.TTL)

	// Infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	debug := cfg.Search.Debug || cfg.Server.Environment == "development"

	// Usecase layer
	catalogService := usecase.NewCatalogService(
		memoryCache,
		usecase.CatalogServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)

	learnedBoosts := usecase.NewLearnedBoosts()
	searchService := usecase.NewSearchService(
		learnedBoosts,
		usecase.SearchConfig{
			CategoryMissMultiplier: cfg.Search.CategoryMissMultiplier,
			LegacyDampening:        cfg.Search.LegacyDampening,
			EnableDebugLogging:     debug,
		},
	)

	log.Printf("Search: miss_multiplier=%.2f, debug=%v", cfg.Search.CategoryMissMultiplier, debug)

	// The boost document is advisory; load it in the background so startup
	// never blocks on the remote host.
	if cfg.Boosts.Enabled {
		client := boosts.NewClient(cfg.Boosts.URL)
		log.Printf("Learned boosts configured: %s", cfg.Boosts.URL)
		go learnedBoosts.Load(context.Background(), client)
	} else {
		log.Printf("Learned boosts disabled")
	}

	// HTTP delivery
	handler := httpDelivery.NewHandler(catalogService, searchService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

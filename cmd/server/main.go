package main

import (
	"log"

	"github.com/jengzang/saferoute-backend-go/internal/api"
	"github.com/jengzang/saferoute-backend-go/internal/config"
	"github.com/jengzang/saferoute-backend-go/internal/database"
	"github.com/jengzang/saferoute-backend-go/internal/middleware"
	"github.com/jengzang/saferoute-backend-go/internal/repository"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	hazards, err := loadHazards(cfg)
	if err != nil {
		log.Fatal("Failed to load hazard registry:", err)
	}
	log.Printf("Loaded %d blackspots", hazards.Len())

	var incidents repository.IncidentStore
	switch cfg.IncidentStore {
	case config.StoreMemory:
		incidents = repository.NewMemoryIncidentStore()
	default:
		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer db.Close()
		incidents = repository.NewSQLiteIncidentStore(db)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer limiter.Close()

	router := api.SetupRouter(cfg, api.Dependencies{
		Hazards:   hazards,
		Incidents: incidents,
		Stats:     repository.NewStatsRepository(),
		Limiter:   limiter,
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func loadHazards(cfg *config.Config) (*repository.HazardRegistry, error) {
	if cfg.HazardsFile != "" {
		return repository.LoadHazardsYAML(cfg.HazardsFile)
	}
	return repository.NewHazardRegistry(repository.DefaultHazards())
}

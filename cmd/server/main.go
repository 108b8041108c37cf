package main

import (
	"net/http"
	"os"

	"github.com/Rubenjb24/Questi-App/internal/api"
	"github.com/Rubenjb24/Questi-App/internal/config"
	"github.com/Rubenjb24/Questi-App/internal/logger"
	"github.com/Rubenjb24/Questi-App/internal/middleware"
	"github.com/Rubenjb24/Questi-App/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Seed in-memory state from fixtures
	s := store.Init()
	logger.Info("Store seeded: %d quests, %d posts", len(s.ActiveQuests())+len(s.WeeklyQuests()), len(s.Feed()))

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	handler := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(cfg.Host+":"+cfg.Port, handler); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

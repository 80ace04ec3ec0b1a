package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"dwed-assistant/config"
	"dwed-assistant/internal/chat/session"
	"dwed-assistant/internal/httpserver"
	plannerRepo "dwed-assistant/internal/planner/repository"
	plannerSqlite "dwed-assistant/internal/planner/repository/sqlite"
	"dwed-assistant/internal/seed"
	venueRepo "dwed-assistant/internal/venue/repository"
	venueSqlite "dwed-assistant/internal/venue/repository/sqlite"
	"dwed-assistant/pkg/llmprovider"
	"dwed-assistant/pkg/log"
)

func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting DWed Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Document store
	db, err := sql.Open("sqlite", cfg.Store.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open document store: %v", err)
	}
	defer db.Close()

	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	venues, err := venueSqlite.New(db, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to init venue repository: %v", err)
	}
	planners, err := plannerSqlite.New(db, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to init planner repository: %v", err)
	}

	seedIfEmpty(ctx, logger, cfg, venues, planners)

	// 4. LLM providers with fallback
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTimeout,
	}, logger)

	// 5. Conversation sessions
	sessions := session.NewStore(cfg.Session.MaxSessions, cfg.Session.TTL)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		DB:          db,
		Providers:   manager,
		Sessions:    sessions,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// seedIfEmpty imports the bundled sample data on first start. A missing
// seed file is not fatal; the store just starts empty.
func seedIfEmpty(ctx context.Context, logger log.Logger, cfg *config.Config, venues venueRepo.Repository, planners plannerRepo.Repository) {
	if n, err := venues.Count(ctx); err == nil && n == 0 && cfg.Store.VenueSeedPath != "" {
		if _, err := seed.ImportVenues(ctx, logger, venues, cfg.Store.VenueSeedPath); err != nil {
			logger.Warnf(ctx, "Venue seed skipped: %v", err)
		}
	}
	if n, err := planners.Count(ctx); err == nil && n == 0 && cfg.Store.PlannerSeedPath != "" {
		if _, err := seed.ImportPlanners(ctx, logger, planners, cfg.Store.PlannerSeedPath); err != nil {
			logger.Warnf(ctx, "Planner seed skipped: %v", err)
		}
	}
}

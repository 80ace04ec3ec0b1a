package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"dwed-assistant/config"
	plannerSqlite "dwed-assistant/internal/planner/repository/sqlite"
	"dwed-assistant/internal/seed"
	venueSqlite "dwed-assistant/internal/venue/repository/sqlite"
	"dwed-assistant/pkg/log"
)

// Imports venue and planner seed files into the document store.
// Re-running replaces documents by id, so it is safe on a live store.
//
// Usage:
//
//	go run scripts/import-data/main.go -venues data/venues.json -planners data/event_planners.json
func main() {
	venuesPath := flag.String("venues", "", "path to venues JSON file")
	plannersPath := flag.String("planners", "", "path to event planners JSON file")
	storePath := flag.String("store", "", "document store path (defaults to config)")
	flag.Parse()

	if *venuesPath == "" && *plannersPath == "" {
		fmt.Println("Nothing to do: pass -venues and/or -planners")
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	path := cfg.Store.Path
	if *storePath != "" {
		path = *storePath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open document store: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if *venuesPath != "" {
		repo, err := venueSqlite.New(db, logger)
		if err != nil {
			logger.Fatalf(ctx, "Failed to init venue repository: %v", err)
		}
		n, err := seed.ImportVenues(ctx, logger, repo, *venuesPath)
		if err != nil {
			logger.Fatalf(ctx, "Venue import failed: %v", err)
		}
		logger.Infof(ctx, "Imported %d venues", n)
	}

	if *plannersPath != "" {
		repo, err := plannerSqlite.New(db, logger)
		if err != nil {
			logger.Fatalf(ctx, "Failed to init planner repository: %v", err)
		}
		n, err := seed.ImportPlanners(ctx, logger, repo, *plannersPath)
		if err != nil {
			logger.Fatalf(ctx, "Planner import failed: %v", err)
		}
		logger.Infof(ctx, "Imported %d planners", n)
	}
}

package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dwed-assistant/internal/planner"
	plannerRepo "dwed-assistant/internal/planner/repository"
	"dwed-assistant/internal/venue"
	venueRepo "dwed-assistant/internal/venue/repository"
	"dwed-assistant/pkg/log"
)

// LoadVenues reads a JSON array of venue documents. Legacy flat-shape
// records are lifted the same way stored documents are.
func LoadVenues(path string) ([]venue.Venue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", path, err)
	}

	venues := make([]venue.Venue, 0, len(items))
	for i, item := range items {
		v, err := venue.Decode(item)
		if err != nil {
			return nil, fmt.Errorf("seed: %s item %d: %w", path, i, err)
		}
		venues = append(venues, v)
	}
	return venues, nil
}

// LoadPlanners reads a JSON array of planner documents.
func LoadPlanners(path string) ([]planner.Planner, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", path, err)
	}

	planners := make([]planner.Planner, 0, len(items))
	for i, item := range items {
		p, err := planner.Decode(item)
		if err != nil {
			return nil, fmt.Errorf("seed: %s item %d: %w", path, i, err)
		}
		planners = append(planners, p)
	}
	return planners, nil
}

// ImportVenues loads the file and upserts every record.
func ImportVenues(ctx context.Context, l log.Logger, repo venueRepo.Repository, path string) (int, error) {
	venues, err := LoadVenues(path)
	if err != nil {
		return 0, err
	}
	for _, v := range venues {
		if err := repo.UpsertVenue(ctx, v); err != nil {
			return 0, err
		}
	}
	l.Infof(ctx, "seed: imported %d venues from %s", len(venues), path)
	return len(venues), nil
}

// ImportPlanners loads the file and upserts every record.
func ImportPlanners(ctx context.Context, l log.Logger, repo plannerRepo.Repository, path string) (int, error) {
	planners, err := LoadPlanners(path)
	if err != nil {
		return 0, err
	}
	for _, p := range planners {
		if err := repo.UpsertPlanner(ctx, p); err != nil {
			return 0, err
		}
	}
	l.Infof(ctx, "seed: imported %d planners from %s", len(planners), path)
	return len(planners), nil
}

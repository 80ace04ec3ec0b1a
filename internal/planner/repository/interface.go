package repository

import (
	"context"

	"dwed-assistant/internal/planner"
)

// Repository is the event-planner collection. Unlike the venue path,
// all planner constraints are resolved at this level; there is no
// refinement stage above it.
type Repository interface {
	ListPlanners(ctx context.Context, opt ListPlannersOptions) ([]planner.Planner, error)

	// UpsertPlanner inserts or replaces one planner document (data import path).
	UpsertPlanner(ctx context.Context, p planner.Planner) error

	// Count reports the collection size (used to decide startup seeding).
	Count(ctx context.Context) (int, error)
}

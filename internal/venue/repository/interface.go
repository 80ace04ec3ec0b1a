package repository

import (
	"context"

	"dwed-assistant/internal/venue"
)

// Repository is the venue collection as seen by the matching engine:
// a read-mostly document store with coarse collection-level predicates.
type Repository interface {
	// ListVenues applies the coarse filter and returns candidate venues.
	// The coarse filter guarantees sufficiency only; capacity-fit refinement
	// happens above this layer.
	ListVenues(ctx context.Context, opt ListVenuesOptions) ([]venue.Venue, error)

	// UpsertVenue inserts or replaces one venue document (data import path).
	UpsertVenue(ctx context.Context, v venue.Venue) error

	// Count reports the collection size (used to decide startup seeding).
	Count(ctx context.Context) (int, error)
}

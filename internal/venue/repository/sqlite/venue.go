package sqlite

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"dwed-assistant/internal/venue"
	repo "dwed-assistant/internal/venue/repository"
)

// ListVenues applies the coarse collection-level filter in SQL and decodes
// matching documents. Capacity sufficiency is checked against any single
// hall or the combined total; price bounds against any single hall.
func (r *implRepository) ListVenues(ctx context.Context, opt repo.ListVenuesOptions) ([]venue.Venue, error) {
	var conds []string
	var args []any

	if opt.Location != "" {
		conds = append(conds, "LOWER(location) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.Location)+"%")
	}

	if opt.Capacity > 0 {
		conds = append(conds, `(total_capacity >= ? OR EXISTS (
			SELECT 1 FROM json_each(venues.halls)
			WHERE json_extract(json_each.value, '$.capacity') >= ?))`)
		args = append(args, opt.Capacity, opt.Capacity)
	}

	if opt.PriceMin != nil || opt.PriceMax != nil {
		var priceConds []string
		if opt.PriceMin != nil {
			priceConds = append(priceConds, "json_extract(json_each.value, '$.price') >= ?")
			args = append(args, *opt.PriceMin)
		}
		if opt.PriceMax != nil {
			priceConds = append(priceConds, "json_extract(json_each.value, '$.price') <= ?")
			args = append(args, *opt.PriceMax)
		}
		conds = append(conds, `EXISTS (
			SELECT 1 FROM json_each(venues.halls)
			WHERE `+strings.Join(priceConds, " AND ")+`)`)
	}

	query := "SELECT doc FROM venues"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListVenues"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var venues []venue.Venue
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListVenues"), err)
			return nil, repo.ErrFailedToList
		}
		v, err := venue.Decode(doc)
		if err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListVenues"), err)
			return nil, repo.ErrFailedToList
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListVenues"), err)
		return nil, repo.ErrFailedToList
	}
	return venues, nil
}

// UpsertVenue inserts or replaces one venue document. The halls and
// total_capacity columns are extracted for coarse SQL filtering; the full
// normalized document is kept alongside.
func (r *implRepository) UpsertVenue(ctx context.Context, v venue.Venue) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.TotalCapacity == 0 {
		for _, h := range v.Halls {
			v.TotalCapacity += h.Capacity
		}
	}

	hallsJSON, err := json.Marshal(v.Halls)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal halls: %v", r.dsn("UpsertVenue"), err)
		return repo.ErrFailedToInsert
	}
	docJSON, err := json.Marshal(v)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal doc: %v", r.dsn("UpsertVenue"), err)
		return repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO venues (id, name, location, total_capacity, halls, doc)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			total_capacity = excluded.total_capacity,
			halls = excluded.halls,
			doc = excluded.doc`

	if _, err := r.db.ExecContext(ctx, query,
		v.ID, v.Name, v.Location, v.TotalCapacity, string(hallsJSON), string(docJSON)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertVenue"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// Count reports the number of venue documents.
func (r *implRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM venues").Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Count"), err)
		return 0, repo.ErrFailedToList
	}
	return n, nil
}

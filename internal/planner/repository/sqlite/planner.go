package sqlite

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"dwed-assistant/internal/planner"
	repo "dwed-assistant/internal/planner/repository"
)

// ListPlanners resolves every planner constraint in SQL: city substring,
// min_budget bounds, and style tag intersection over the event_types array.
func (r *implRepository) ListPlanners(ctx context.Context, opt repo.ListPlannersOptions) ([]planner.Planner, error) {
	var conds []string
	var args []any

	if opt.Location != "" {
		conds = append(conds, "LOWER(city) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.Location)+"%")
	}

	if opt.BudgetMin != nil {
		conds = append(conds, "min_budget >= ?")
		args = append(args, *opt.BudgetMin)
	}
	if opt.BudgetMax != nil {
		conds = append(conds, "min_budget <= ?")
		args = append(args, *opt.BudgetMax)
	}

	if opt.Style != "" {
		tags, ok := planner.StyleTags[opt.Style]
		if !ok {
			// Unknown styles never reach here; treat as no match.
			return nil, nil
		}
		placeholders := make([]string, len(tags))
		for i, tag := range tags {
			placeholders[i] = "?"
			args = append(args, tag)
		}
		conds = append(conds, `EXISTS (
			SELECT 1 FROM json_each(event_planners.event_types)
			WHERE json_each.value IN (`+strings.Join(placeholders, ", ")+`))`)
	}

	query := "SELECT doc FROM event_planners"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPlanners"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var planners []planner.Planner
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPlanners"), err)
			return nil, repo.ErrFailedToList
		}
		p, err := planner.Decode(doc)
		if err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListPlanners"), err)
			return nil, repo.ErrFailedToList
		}
		planners = append(planners, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListPlanners"), err)
		return nil, repo.ErrFailedToList
	}
	return planners, nil
}

// UpsertPlanner inserts or replaces one planner document. City, min_budget
// and event_types are extracted for SQL filtering; the full document is
// kept alongside.
func (r *implRepository) UpsertPlanner(ctx context.Context, p planner.Planner) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	eventTypes := p.EventTypes
	if eventTypes == nil {
		eventTypes = []string{}
	}
	typesJSON, err := json.Marshal(eventTypes)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal event types: %v", r.dsn("UpsertPlanner"), err)
		return repo.ErrFailedToInsert
	}
	docJSON, err := json.Marshal(p)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal doc: %v", r.dsn("UpsertPlanner"), err)
		return repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO event_planners (id, name, city, min_budget, event_types, doc)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			city = excluded.city,
			min_budget = excluded.min_budget,
			event_types = excluded.event_types,
			doc = excluded.doc`

	if _, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.City, p.MinBudget, string(typesJSON), string(docJSON)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPlanner"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// Count reports the number of planner documents.
func (r *implRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM event_planners").Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Count"), err)
		return 0, repo.ErrFailedToList
	}
	return n, nil
}

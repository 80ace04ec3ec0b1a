package intent

import (
	"strings"

	"github.com/tidwall/gjson"

	"dwed-assistant/internal/planner"
)

// VenueFilter is the normalized venue search constraint set.
// Zero values mean "not requested".
type VenueFilter struct {
	Location string
	Capacity int
	PriceMin *int
	PriceMax *int
}

// PlannerFilter is the normalized planner search constraint set.
// Zero values mean "not requested".
type PlannerFilter struct {
	Location  string
	BudgetMin *int
	BudgetMax *int
	Style     string
}

// NormalizeVenueFilters builds a VenueFilter from raw directive fields.
// Unknown fields and invalid values are dropped; a drop is never fatal,
// the remaining fields still apply.
func NormalizeVenueFilters(filters map[string]gjson.Result) VenueFilter {
	var f VenueFilter
	for key, value := range filters {
		switch key {
		case "location":
			if value.Type == gjson.String {
				f.Location = strings.ToLower(strings.TrimSpace(value.String()))
			}
		case "capacity":
			if n, ok := asCount(value); ok {
				f.Capacity = n
			}
		case "price_min":
			if n, ok := asCount(value); ok {
				f.PriceMin = &n
			}
		case "price_max":
			if n, ok := asCount(value); ok {
				f.PriceMax = &n
			}
		}
	}
	return f
}

// NormalizePlannerFilters builds a PlannerFilter from raw directive
// fields. A style outside the known set is dropped, not an error.
func NormalizePlannerFilters(filters map[string]gjson.Result) PlannerFilter {
	var f PlannerFilter
	for key, value := range filters {
		switch key {
		case "location":
			if value.Type == gjson.String {
				f.Location = strings.ToLower(strings.TrimSpace(value.String()))
			}
		case "budget_min":
			if n, ok := asCount(value); ok {
				f.BudgetMin = &n
			}
		case "budget_max":
			if n, ok := asCount(value); ok {
				f.BudgetMax = &n
			}
		case "style":
			if value.Type != gjson.String {
				continue
			}
			style := strings.ToLower(strings.TrimSpace(value.String()))
			if _, ok := planner.StyleTags[style]; ok {
				f.Style = style
			}
		}
	}
	return f
}

// asCount accepts a non-negative integral JSON number. Strings,
// fractional and negative numbers are rejected.
func asCount(value gjson.Result) (int, bool) {
	if value.Type != gjson.Number {
		return 0, false
	}
	n := value.Num
	if n < 0 || n != float64(int(n)) {
		return 0, false
	}
	return int(n), true
}

package repository

// ListPlannersOptions holds the planner filter. Zero values mean
// "not requested".
type ListPlannersOptions struct {
	// Location is matched as a case-insensitive substring of the
	// planner's city.
	Location string

	// BudgetMin/BudgetMax keep planners whose min_budget falls within
	// the given bounds. Either bound may be nil.
	BudgetMin *int
	BudgetMax *int

	// Style is a normalized style keyword. Planners match when their
	// event_types intersect the style's tag set.
	Style string
}

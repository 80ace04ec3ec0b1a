package repository

// ListVenuesOptions holds the coarse collection-level filter.
// Zero values mean "not requested".
type ListVenuesOptions struct {
	// Location is matched as a case-insensitive substring.
	Location string

	// Capacity keeps venues where some hall or the combined total
	// can seat this many guests.
	Capacity int

	// PriceMin/PriceMax keep venues where some hall's price falls
	// within the given bounds. Either bound may be nil.
	PriceMin *int
	PriceMax *int
}

package venue

// CapacityTolerance is how many seats above the requested guest count a hall
// may have and still count as a fit. A hall more than this many seats larger
// than the request is a poor fit and excludes the venue (unless another hall
// fits). The bound is inclusive on both ends: [requested, requested+tolerance].
const CapacityTolerance = 100

// MatchCapacity applies the capacity-fit post-filter to coarse-filtered
// candidates and annotates every retained venue with the requested capacity.
//
// The coarse collection filter only guarantees sufficiency (some hall or the
// combined total can seat everyone); this pass additionally rejects venues
// whose only sufficient halls are grossly oversized. When no capacity was
// requested every candidate is retained, annotated with 0.
func MatchCapacity(candidates []Venue, requested int) []Result {
	results := make([]Result, 0, len(candidates))

	for _, v := range candidates {
		if requested > 0 && !v.hasFittingHall(requested) {
			continue
		}
		results = append(results, Result{Venue: v, RequestedCapacity: max(requested, 0)})
	}

	return results
}

// hasFittingHall reports whether some hall seats within
// [requested, requested+CapacityTolerance].
func (v Venue) hasFittingHall(requested int) bool {
	for _, h := range v.Halls {
		if h.Capacity >= requested && h.Capacity <= requested+CapacityTolerance {
			return true
		}
	}
	return false
}

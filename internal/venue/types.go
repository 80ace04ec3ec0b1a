package venue

import "encoding/json"

// Hall is a bookable banquet hall within a venue.
type Hall struct {
	Name            string `json:"name,omitempty"`
	Capacity        int    `json:"capacity"`
	Price           int    `json:"price"`
	MinBookingHours int    `json:"min_booking_hours,omitempty"`
}

// Venue is a wedding venue document. Halls is always non-empty after decoding:
// legacy flat-shape documents are lifted into a single-hall record so the
// matching policy has one code path.
type Venue struct {
	ID            string         `json:"_id,omitempty"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	TotalCapacity int            `json:"total_capacity,omitempty"`
	Halls         []Hall         `json:"banquets"`
	Facilities    map[string]any `json:"facilities,omitempty"`
	Description   string         `json:"description,omitempty"`
}

// Result is a matched venue annotated with the capacity the user asked for,
// so consumers can display "you asked for N, this hall seats M".
// RequestedCapacity is 0 when the request carried no capacity filter.
type Result struct {
	Venue
	RequestedCapacity int `json:"requestedCapacity"`
}

// document is the raw stored shape. Legacy records carry capacity and
// price_per_head directly instead of a banquets list.
type document struct {
	ID            string         `json:"_id,omitempty"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	TotalCapacity int            `json:"total_capacity,omitempty"`
	Halls         []Hall         `json:"banquets,omitempty"`
	Facilities    map[string]any `json:"facilities,omitempty"`
	Description   string         `json:"description,omitempty"`

	// Legacy flat shape
	Capacity     *int `json:"capacity,omitempty"`
	PricePerHead *int `json:"price_per_head,omitempty"`
}

// Decode parses a venue document, normalizing both supported record shapes
// into the internal non-empty-halls form.
func Decode(data []byte) (Venue, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Venue{}, err
	}

	v := Venue{
		ID:            doc.ID,
		Name:          doc.Name,
		Location:      doc.Location,
		TotalCapacity: doc.TotalCapacity,
		Halls:         doc.Halls,
		Facilities:    doc.Facilities,
		Description:   doc.Description,
	}

	if len(v.Halls) == 0 && doc.Capacity != nil {
		hall := Hall{Name: doc.Name, Capacity: *doc.Capacity}
		if doc.PricePerHead != nil {
			hall.Price = *doc.PricePerHead
		}
		v.Halls = []Hall{hall}
	}

	if v.TotalCapacity == 0 {
		for _, h := range v.Halls {
			v.TotalCapacity += h.Capacity
		}
	}

	return v, nil
}

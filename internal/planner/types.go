package planner

import "encoding/json"

// Contact holds the planner's public contact channels.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Planner is an event planner profile as served to the client.
type Planner struct {
	ID                 string         `json:"_id,omitempty"`
	Name               string         `json:"name"`
	City               string         `json:"city,omitempty"`
	Location           string         `json:"location,omitempty"`
	Rating             float64        `json:"rating,omitempty"`
	ExperienceYears    int            `json:"experience_years,omitempty"`
	PriceRange         string         `json:"price_range,omitempty"`
	MinBudget          int            `json:"min_budget,omitempty"`
	Description        string         `json:"description,omitempty"`
	TotalEventsPlanned int            `json:"total_events_planned,omitempty"`
	Services           map[string]any `json:"services,omitempty"`
	EventTypes         []string       `json:"event_types,omitempty"`
	PortfolioImages    []string       `json:"portfolio_images,omitempty"`
	Contact            *Contact       `json:"contact,omitempty"`
}

// StyleTags maps a normalized style keyword to the event-type tags it
// stands for. A planner matches a style when its event_types share at
// least one tag with the style's set.
var StyleTags = map[string][]string{
	"traditional": {"Traditional Ceremonies", "Wedding"},
	"modern":      {"Birthday Parties", "Corporate Events"},
	"luxury":      {"Destination Weddings", "Beach Weddings"},
}

// Decode parses a stored planner document.
func Decode(raw []byte) (Planner, error) {
	var p Planner
	if err := json.Unmarshal(raw, &p); err != nil {
		return Planner{}, err
	}
	return p, nil
}

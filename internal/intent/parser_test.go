package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwed-assistant/internal/intent"
)

func TestParse_VenueDirective(t *testing.T) {
	res := intent.Parse(`{"task": "find_venue", "filters": {"location": "Delhi", "capacity": 500}}`)
	require.NotNil(t, res.Directive)
	assert.Empty(t, res.Text)
	assert.Equal(t, intent.KindFindVenue, res.Directive.Kind)
	assert.Equal(t, "Delhi", res.Directive.Filters["location"].String())
	assert.Equal(t, int64(500), res.Directive.Filters["capacity"].Int())
}

func TestParse_PlannerDirective(t *testing.T) {
	res := intent.Parse(`{"task": "find_planner", "filters": {"style": "luxury", "budget_min": 50000}}`)
	require.NotNil(t, res.Directive)
	assert.Equal(t, intent.KindFindPlanner, res.Directive.Kind)
	assert.Equal(t, "luxury", res.Directive.Filters["style"].String())
}

func TestParse_MissingFiltersIsEmptyDirective(t *testing.T) {
	res := intent.Parse(`{"task": "find_venue"}`)
	require.NotNil(t, res.Directive)
	assert.Equal(t, intent.KindFindVenue, res.Directive.Kind)
	assert.Empty(t, res.Directive.Filters)
}

func TestParse_FencedDirective(t *testing.T) {
	reply := "```json\n{\"task\": \"find_venue\", \"filters\": {\"location\": \"Goa\"}}\n```"
	res := intent.Parse(reply)
	require.NotNil(t, res.Directive)
	assert.Equal(t, intent.KindFindVenue, res.Directive.Kind)
	assert.Equal(t, "Goa", res.Directive.Filters["location"].String())
}

func TestParse_FreeText(t *testing.T) {
	for name, reply := range map[string]string{
		"plain prose":       "Congratulations on your engagement! Tell me more about your plans.",
		"unknown task":      `{"task": "book_flight", "filters": {"to": "Goa"}}`,
		"missing task":      `{"filters": {"location": "Delhi", "capacity": 500}}`,
		"non-string task":   `{"task": 42}`,
		"non-object filter": `{"task": "find_venue", "filters": "delhi"}`,
		"json array":        `["find_venue"]`,
		"embedded json":     `Here you go: {"task": "find_venue", "filters": {"location": "Delhi"}}`,
		"malformed":         `{"task": "find_venue", "filters": }`,
		"unclosed fence":    "```json\n{\"task\": \"find_venue\"}",
	} {
		t.Run(name, func(t *testing.T) {
			res := intent.Parse(reply)
			assert.Nil(t, res.Directive)
			assert.Equal(t, reply, res.Text)
		})
	}
}

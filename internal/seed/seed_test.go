package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwed-assistant/internal/seed"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVenues_LiftsLegacyShape(t *testing.T) {
	path := writeFile(t, "venues.json", `[
		{"name": "Multi", "location": "Delhi", "banquets": [
			{"name": "A", "capacity": 300, "price": 100000},
			{"name": "B", "capacity": 200, "price": 80000}
		]},
		{"name": "Flat", "location": "Pune", "capacity": 600, "price_per_head": 1000}
	]`)

	venues, err := seed.LoadVenues(path)
	require.NoError(t, err)
	require.Len(t, venues, 2)

	assert.Equal(t, 500, venues[0].TotalCapacity)

	// Legacy record becomes a single-hall venue.
	require.Len(t, venues[1].Halls, 1)
	assert.Equal(t, 600, venues[1].Halls[0].Capacity)
	assert.Equal(t, 1000, venues[1].Halls[0].Price)
	assert.Equal(t, 600, venues[1].TotalCapacity)
}

func TestLoadVenues_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := seed.LoadVenues(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("not an array", func(t *testing.T) {
		path := writeFile(t, "venues.json", `{"name": "solo"}`)
		_, err := seed.LoadVenues(path)
		assert.Error(t, err)
	})
}

func TestLoadPlanners(t *testing.T) {
	path := writeFile(t, "planners.json", `[
		{"name": "Dream Events", "city": "Delhi", "min_budget": 500000,
		 "event_types": ["Wedding", "Sangeet"],
		 "contact": {"phone": "+91 90000 00000"}}
	]`)

	planners, err := seed.LoadPlanners(path)
	require.NoError(t, err)
	require.Len(t, planners, 1)
	assert.Equal(t, "Dream Events", planners[0].Name)
	assert.Equal(t, 500000, planners[0].MinBudget)
	require.NotNil(t, planners[0].Contact)
	assert.Equal(t, "+91 90000 00000", planners[0].Contact.Phone)
}

func TestLoadBundledSeedFiles(t *testing.T) {
	venues, err := seed.LoadVenues("../../data/venues.json")
	require.NoError(t, err)
	assert.NotEmpty(t, venues)
	for _, v := range venues {
		assert.NotEmpty(t, v.Halls, "venue %q has no halls after decode", v.Name)
	}

	planners, err := seed.LoadPlanners("../../data/event_planners.json")
	require.NoError(t, err)
	assert.NotEmpty(t, planners)
}

package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinevale/voyager-go/internal/domain/encounter"
	"github.com/brinevale/voyager-go/internal/domain/ship"
	"github.com/brinevale/voyager-go/internal/domain/world"
	"github.com/brinevale/voyager-go/internal/infrastructure/registry"
)

func TestLoadEmbedded(t *testing.T) {
	reg, err := registry.Load("")
	require.NoError(t, err)

	port, ok := reg.Port("saltmere")
	require.True(t, ok)
	assert.Equal(t, "Saltmere", port.Name)
	assert.Equal(t, world.WaterCoastal, port.Water)

	miles, ok := port.DistanceTo("gullpoint")
	require.True(t, ok)
	assert.Equal(t, 180, miles)

	route, ok := reg.Route("coastal-run")
	require.True(t, ok)
	assert.Equal(t, []string{"saltmere", "gullpoint", "farshore"}, route.Waypoints())

	circuit, ok := reg.Route("merchant-circuit")
	require.True(t, ok)
	assert.Equal(t, "brinevale", circuit.Waypoints()[len(circuit.Waypoints())-1])

	tmpl, ok := reg.ShipTemplate("coaster")
	require.True(t, ok)
	assert.Equal(t, 30, tmpl.HullMax)
	assert.Equal(t, 10, tmpl.Crew.Count(ship.RoleSailor))

	_, ok = reg.ShipTemplate("ghost-ship")
	assert.False(t, ok)
}

func TestLoadEmbeddedRouteLegsAreConnected(t *testing.T) {
	reg, err := registry.Load("")
	require.NoError(t, err)

	for _, route := range reg.Routes() {
		points := route.Waypoints()
		for i := 1; i < len(points); i++ {
			origin, ok := reg.Port(points[i-1])
			require.True(t, ok, "route %s: unknown port %s", route.ID, points[i-1])
			_, ok = origin.DistanceTo(points[i])
			assert.True(t, ok, "route %s: no connection %s -> %s", route.ID, points[i-1], points[i])
		}
	}
}

func TestLoadEmbeddedCargoCategories(t *testing.T) {
	reg, err := registry.Load("")
	require.NoError(t, err)

	cats := reg.CargoCategories()
	require.Len(t, cats, 5)
	assert.Equal(t, world.CargoPrimitive, cats[0].Class)
	assert.Equal(t, world.CargoPrecious, cats[4].Class)

	// Ordered and contiguous so every determination roll lands somewhere.
	for i := 1; i < len(cats); i++ {
		assert.Equal(t, cats[i-1].RollMax+1, cats[i].RollMin)
	}

	cat, err := world.CategoryForRoll(cats, 14)
	require.NoError(t, err)
	assert.Equal(t, world.CargoComfort, cat.Class)
}

func TestLoadEmbeddedEncounterTables(t *testing.T) {
	reg, err := registry.Load("")
	require.NoError(t, err)

	table := reg.EncounterTable()
	for _, water := range []world.WaterType{world.WaterFresh, world.WaterCoastal, world.WaterShallow, world.WaterDeep} {
		byClass, ok := table[water]
		require.True(t, ok, "missing table for %s", water)
		assert.NotEmpty(t, byClass[encounter.FrequencyCommon], "no common entries for %s", water)
	}

	entry, err := table.Pick(world.WaterDeep, encounter.FrequencyVeryRare, 0)
	require.NoError(t, err)
	assert.Equal(t, "Kraken", entry.Name)
	assert.True(t, entry.Capsize)
}

func TestLoadDirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"ports.yaml": `
- id: near
  name: Near
  size: PORT
  water: COASTAL
  connections: {far: 100}
- id: far
  name: Far
  size: MINOR_PORT
  water: COASTAL
  connections: {near: 100}
`,
		"routes.yaml": `
- id: hop
  name: Hop
  ports: [near, far]
`,
		"ships.yaml": `
- id: skiff
  name: Skiff
  ship_type: Skiff
  hull_max: 10
  cargo_capacity: 4
  movement: 10
  crew:
    - {role: SAILOR, count: 4}
`,
		"cargo.yaml": `
- {class: PRIMITIVE, base_value: 40, roll_min: 3, roll_max: 20}
`,
		"encounters.yaml": `
tables:
  COASTAL:
    COMMON:
      - {name: Shark, category: FISH, size: L, hit_dice: 4, number: "1d3"}
`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	reg, err := registry.Load(dir)
	require.NoError(t, err)

	_, ok := reg.Port("near")
	assert.True(t, ok)
	_, ok = reg.Port("saltmere")
	assert.False(t, ok, "override replaces the embedded set")
	assert.Len(t, reg.Ports(), 2)
}

func TestLoadRejectsRouteWithUnknownPort(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"ports.yaml": `
- id: near
  name: Near
  size: PORT
  water: COASTAL
`,
		"routes.yaml": `
- id: hop
  name: Hop
  ports: [near, nowhere]
`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	_, err := registry.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown port")
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := registry.Load("/nonexistent/registry")
	require.Error(t, err)
}

package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinevale/voyager-go/internal/domain/world"
)

func testPorts() map[string]*world.Port {
	return map[string]*world.Port{
		"saltmere": {
			ID: "saltmere", Name: "Saltmere", Size: world.PortSizeMajor, Water: world.WaterCoastal,
			Connections: map[string]int{"gullpoint": 180, "farshore": 520},
		},
		"gullpoint": {
			ID: "gullpoint", Name: "Gullpoint", Size: world.PortSizeMinor, Water: world.WaterShallow,
			Connections: map[string]int{"saltmere": 180, "farshore": 340},
		},
		"farshore": {
			ID: "farshore", Name: "Farshore", Size: world.PortSizePort, Water: world.WaterDeep,
			Connections: map[string]int{"saltmere": 520, "gullpoint": 340},
		},
	}
}

func TestPortSize_MerchantModifier(t *testing.T) {
	assert.Equal(t, 2, world.PortSizeMajor.MerchantModifier())
	assert.Equal(t, 1, world.PortSizePort.MerchantModifier())
	assert.Equal(t, 0, world.PortSizeMinor.MerchantModifier())
	assert.Equal(t, -2, world.PortSizeAnchorage.MerchantModifier())
}

func TestPortSize_OffersRepairs(t *testing.T) {
	assert.False(t, world.PortSizeAnchorage.OffersRepairs())
	assert.True(t, world.PortSizeMinor.OffersRepairs())
}

func TestRoute_WaypointsCircuit(t *testing.T) {
	route := &world.Route{
		ID:      "gull-run",
		Ports:   []string{"saltmere", "gullpoint", "farshore"},
		Circuit: true,
	}

	assert.Equal(t, []string{"saltmere", "gullpoint", "farshore", "saltmere"}, route.Waypoints())
}

func TestPlanLegs(t *testing.T) {
	ports := testPorts()
	lookup := func(id string) (*world.Port, bool) {
		p, ok := ports[id]
		return p, ok
	}
	route := &world.Route{
		ID:      "gull-run",
		Ports:   []string{"saltmere", "gullpoint", "farshore"},
		Circuit: true,
	}

	legs, err := world.PlanLegs(route, lookup)
	require.NoError(t, err)
	require.Len(t, legs, 3)

	assert.Equal(t, 180, legs[0].Miles)
	assert.Equal(t, world.WaterShallow, legs[0].Water) // coastal joins shallow
	assert.Equal(t, 340, legs[1].Miles)
	assert.Equal(t, world.WaterDeep, legs[1].Water)
	assert.True(t, legs[2].IsReturn)
	assert.Equal(t, "saltmere", legs[2].ToID)
}

func TestPlanLegs_MissingConnection(t *testing.T) {
	ports := testPorts()
	delete(ports["gullpoint"].Connections, "farshore")
	lookup := func(id string) (*world.Port, bool) {
		p, ok := ports[id]
		return p, ok
	}
	route := &world.Route{ID: "broken", Ports: []string{"saltmere", "gullpoint", "farshore"}}

	_, err := world.PlanLegs(route, lookup)
	assert.Error(t, err)
}

func defaultCategories() []world.CargoCategory {
	return []world.CargoCategory{
		{Class: world.CargoPrimitive, BaseValue: 50, RollMin: 3, RollMax: 7},
		{Class: world.CargoConsumer, BaseValue: 150, RollMin: 8, RollMax: 12},
		{Class: world.CargoComfort, BaseValue: 400, RollMin: 13, RollMax: 15},
		{Class: world.CargoFine, BaseValue: 1000, RollMin: 16, RollMax: 17},
		{Class: world.CargoPrecious, BaseValue: 3000, RollMin: 18, RollMax: 20},
	}
}

func TestCategoryForRoll(t *testing.T) {
	categories := defaultCategories()

	got, err := world.CategoryForRoll(categories, 10)
	require.NoError(t, err)
	assert.Equal(t, world.CargoConsumer, got.Class)

	// Clamps outside the table.
	low, err := world.CategoryForRoll(categories, 1)
	require.NoError(t, err)
	assert.Equal(t, world.CargoPrimitive, low.Class)

	high, err := world.CategoryForRoll(categories, 22)
	require.NoError(t, err)
	assert.Equal(t, world.CargoPrecious, high.Class)
}

func TestRoute_Validate(t *testing.T) {
	route := &world.Route{ID: "r", Ports: []string{"a"}}
	assert.Error(t, route.Validate())

	route.Ports = []string{"a", "a"}
	assert.Error(t, route.Validate())

	route.Ports = []string{"a", "b"}
	assert.NoError(t, route.Validate())
}

package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinevale/voyager-go/internal/domain/ship"
)

func testTemplate() *ship.Template {
	return &ship.Template{
		ID:            "coaster",
		Name:          "Gull of Brinevale",
		ShipType:      "Coastal Trader",
		HullMax:       30,
		CargoCapacity: 20,
		Movement:      15,
		Crew: ship.Complement{
			{Role: ship.RoleSailor, Count: 10},
			{Role: ship.RoleOarsman, Count: 5},
			{Role: ship.RoleMarine, Count: 2},
			{Role: ship.RoleMate, Count: 1},
			{Role: ship.RoleLieutenant, Count: 1, Level: 2},
		},
	}
}

func TestTemplate_InstantiateIsDeepClone(t *testing.T) {
	template := testTemplate()
	instance := template.Instantiate()

	instance.ApplyHullDamage(10)
	instance.Crew = instance.Crew.Adjust(ship.RoleSailor, -4)

	// Template must be untouched by instance mutations.
	assert.Equal(t, 30, template.HullMax)
	assert.Equal(t, 10, template.Crew.Count(ship.RoleSailor))
	assert.Equal(t, 20, instance.Hull.Value)
	assert.Equal(t, 6, instance.Crew.Count(ship.RoleSailor))
}

func TestShip_BaseSpeed(t *testing.T) {
	instance := testTemplate().Instantiate()
	assert.Equal(t, 120, instance.BaseSpeed())
}

func TestShip_ApplyHullDamageFloorsAtZero(t *testing.T) {
	instance := testTemplate().Instantiate()

	absorbed := instance.ApplyHullDamage(50)

	assert.Equal(t, 30, absorbed)
	assert.Equal(t, 0, instance.Hull.Value)
	assert.True(t, instance.IsSunk())
}

func TestShip_RepairCapsAtMax(t *testing.T) {
	instance := testTemplate().Instantiate()
	instance.ApplyHullDamage(12)

	restored := instance.Repair(20)

	assert.Equal(t, 12, restored)
	assert.Equal(t, 30, instance.Hull.Value)
}

func TestShip_SpeedPenalty(t *testing.T) {
	instance := testTemplate().Instantiate()

	instance.ApplyHullDamage(7) // 23/30 = 23% damage
	assert.Equal(t, 20, instance.SpeedPenaltyPercent())
	assert.False(t, instance.DeadInWater())

	instance.ApplyHullDamage(16) // 7/30 left = 76% damage
	assert.True(t, instance.DeadInWater())
}

func TestComplement_Wages(t *testing.T) {
	crew := testTemplate().Crew
	// 10 sailors*2 + 5 oarsmen*5 + 2 marines*3 + 1 mate*30 + 1 lt*200
	assert.Equal(t, 281, crew.MonthlyWage())
	assert.Equal(t, 19, crew.Total())
}

func TestComplement_RemoveCasualties(t *testing.T) {
	crew := testTemplate().Crew.Clone()

	crew, removed := crew.RemoveCasualties(11)

	require.Equal(t, 11, removed)
	assert.Equal(t, 0, crew.Count(ship.RoleSailor))
	assert.Equal(t, 1, crew.Count(ship.RoleMarine))
	// Oarsmen are never drawn as casualties.
	assert.Equal(t, 5, crew.Count(ship.RoleOarsman))
}

func TestShip_RequiredCrew(t *testing.T) {
	template := testTemplate()
	instance := template.Instantiate()
	instance.Crew, _ = instance.Crew.RemoveCasualties(3)

	shortfall := instance.RequiredCrew(template)

	assert.Equal(t, map[ship.CrewRole]int{ship.RoleSailor: 3}, shortfall)
}

func TestTemplate_Validate(t *testing.T) {
	template := testTemplate()
	assert.NoError(t, template.Validate())

	template.Movement = 0
	assert.Error(t, template.Validate())
}

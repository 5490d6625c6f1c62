package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinevale/voyager-go/internal/domain/shared"
)

func TestDate_AddDays(t *testing.T) {
	d, err := shared.NewDate(1247, 12, 28)
	require.NoError(t, err)

	next := d.AddDays(5)
	assert.Equal(t, shared.Date{Year: 1247, Month: 13, Day: 3}, next)
}

func TestDate_AddDays_YearRollover(t *testing.T) {
	d, err := shared.NewDate(1247, 16, 30)
	require.NoError(t, err)

	assert.Equal(t, shared.Date{Year: 1248, Month: 1, Day: 1}, d.Next())
}

func TestDate_DaysUntil(t *testing.T) {
	a := shared.Date{Year: 1247, Month: 1, Day: 1}
	b := a.AddDays(137)

	assert.Equal(t, 137, a.DaysUntil(b))
	assert.Equal(t, -137, b.DaysUntil(a))
}

func TestDate_String(t *testing.T) {
	d := shared.Date{Year: 1247, Month: 12, Day: 14}
	assert.Equal(t, "14 Stormwatch 1247", d.String())
}

func TestDate_Validate(t *testing.T) {
	_, err := shared.NewDate(1247, 17, 1)
	assert.Error(t, err)

	_, err = shared.NewDate(1247, 3, 31)
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	m, err := shared.ParseMonth("stormwatch")
	require.NoError(t, err)
	assert.Equal(t, 12, m)

	_, err = shared.ParseMonth("Fogtide")
	assert.Error(t, err)
}

func TestCrewQuality_Modifier(t *testing.T) {
	assert.Equal(t, -2, shared.CrewQualityLandlubber.Modifier())
	assert.Equal(t, -1, shared.CrewQualityGreen.Modifier())
	assert.Equal(t, 0, shared.CrewQualityAverage.Modifier())
	assert.Equal(t, 1, shared.CrewQualityTrained.Modifier())
	assert.Equal(t, 2, shared.CrewQualityCrack.Modifier())
	assert.Equal(t, 2, shared.CrewQualityOldSalts.Modifier())
}

func TestParseCrewQuality(t *testing.T) {
	q, err := shared.ParseCrewQuality("TRAINED")
	require.NoError(t, err)
	assert.Equal(t, shared.CrewQualityTrained, q)

	_, err = shared.ParseCrewQuality("SALTY")
	assert.Error(t, err)
}

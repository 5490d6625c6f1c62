package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/weather"
)

func record(windMPH int) weather.Record {
	return weather.Record{
		Wind: weather.Wind{SpeedMPH: windMPH, Direction: "NW"},
		Sky:  "partly cloudy",
	}
}

func TestSailingSpeed_Becalmed(t *testing.T) {
	speed := weather.SailingSpeed(record(3), 120, dice.NewRoller(1))

	assert.True(t, speed.Becalmed)
	assert.Equal(t, 0, speed.MilesPerDay)
	assert.Contains(t, speed.Note, "Becalmed")
}

func TestSailingSpeed_LightWinds(t *testing.T) {
	// wind 12: S - 8*floor(8/10) = S - 0; wind 8: S - 8*floor(12/10) = S - 8.
	assert.Equal(t, 120, weather.SailingSpeed(record(12), 120, dice.NewRoller(1)).MilesPerDay)
	assert.Equal(t, 112, weather.SailingSpeed(record(8), 120, dice.NewRoller(1)).MilesPerDay)

	// Never below 1 while there is wind at all.
	assert.Equal(t, 1, weather.SailingSpeed(record(5), 8, dice.NewRoller(1)).MilesPerDay)
}

func TestSailingSpeed_GoodWinds(t *testing.T) {
	speed := weather.SailingSpeed(record(25), 120, dice.NewRoller(1))

	assert.Equal(t, 120, speed.MilesPerDay)
	assert.False(t, speed.Becalmed)
}

func TestSailingSpeed_StrongWinds(t *testing.T) {
	// wind 55: S + 16*floor(25/10) = S + 32.
	assert.Equal(t, 152, weather.SailingSpeed(record(55), 120, dice.NewRoller(1)).MilesPerDay)
}

func TestSailingSpeed_WetSails(t *testing.T) {
	rec := record(25)
	rec.Precipitation = weather.Precipitation{Type: "light rainstorm", DurationHours: 4}

	// Scripted Between(5,10) consumes one Intn(6); face 3 maps to u=7.
	roller := dice.NewScriptedRoller(3)
	speed := weather.SailingSpeed(rec, 120, roller)

	assert.Equal(t, 120*7/100, speed.WetSailsBonus)
	assert.Equal(t, 128, speed.MilesPerDay)
}

func TestApplyHullPenalty(t *testing.T) {
	assert.Equal(t, 120, weather.ApplyHullPenalty(120, 0))
	assert.Equal(t, 96, weather.ApplyHullPenalty(120, 20))
	assert.Equal(t, 0, weather.ApplyHullPenalty(120, 100))
}

func TestRowingSpeed(t *testing.T) {
	fresh := weather.RowingSpeed(0)
	assert.Equal(t, 8, fresh.MilesPerDay)

	fatigued := weather.RowingSpeed(4)
	assert.Equal(t, 4, fatigued.MilesPerDay)
	assert.Contains(t, fatigued.Note, "fatigued")
}

func TestClassifyHazard(t *testing.T) {
	tests := []struct {
		name    string
		rec     weather.Record
		want    weather.Severity
		penalty int
	}{
		{"calm", record(25), weather.SeverityNone, 0},
		{"storm winds", record(35), weather.SeverityMinor, 2},
		{"gale", record(55), weather.SeverityMajor, 5},
		{"hurricane wind", record(80), weather.SeverityCritical, 10},
		{
			"named gale",
			weather.Record{Wind: weather.Wind{SpeedMPH: 45}, Sky: "gale warnings"},
			weather.SeverityMajor, 5,
		},
		{
			"thunderstorm",
			weather.Record{
				Wind:          weather.Wind{SpeedMPH: 20},
				Precipitation: weather.Precipitation{Type: "thunderstorm"},
			},
			weather.SeverityMinor, 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hazard := weather.ClassifyHazard(tc.rec)
			assert.Equal(t, tc.want, hazard.Severity)
			assert.Equal(t, tc.penalty, hazard.PilotingPenalty)
		})
	}
}

func TestClassifyHazard_FogComposes(t *testing.T) {
	rec := record(55)
	rec.Sky = "gale under heavy fog"

	hazard := weather.ClassifyHazard(rec)

	assert.Equal(t, weather.SeverityMajor, hazard.Severity)
	assert.Equal(t, 11, hazard.PilotingPenalty) // 5 gale + 6 heavy fog
}

func TestClassifyHazard_FogAlone(t *testing.T) {
	rec := record(15)
	rec.Sky = "fog banks"

	hazard := weather.ClassifyHazard(rec)

	assert.Equal(t, weather.SeverityMinor, hazard.Severity)
	assert.Equal(t, 3, hazard.PilotingPenalty)
}

func TestHazardDamage_Bands(t *testing.T) {
	// Major severity, miss margin 7 rolls 1d5+3; a scripted 3 gives 6.
	dmg := weather.HazardDamage(weather.SeverityMajor, 7, dice.NewScriptedRoller(3))
	assert.Equal(t, 6, dmg)

	// Minor band [1,2] is a flat single point.
	assert.Equal(t, 1, weather.HazardDamage(weather.SeverityMinor, 2, dice.NewScriptedRoller()))

	// Critical at 8+ rolls 1d6+4.
	dmg = weather.HazardDamage(weather.SeverityCritical, 9, dice.NewScriptedRoller(6))
	assert.Equal(t, 10, dmg)

	assert.Equal(t, 0, weather.HazardDamage(weather.SeverityMajor, 0, dice.NewScriptedRoller()))
}

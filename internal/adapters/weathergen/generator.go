// Package weathergen supplies daily weather to the voyage engine. The
// Generator rolls plausible maritime weather from a seeded source; the
// CommandAdapter shells out to an external generator and parses its JSON.
package weathergen

import (
	"context"
	"sync"

	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/weather"
)

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var precipitationTypes = []string{"drizzle", "rain", "rainstorm", "fog", "hailstorm", "thunderstorm"}

// Generator is the built-in weather source. It produces trade-lane weather
// most days with the occasional gale or dead calm.
type Generator struct {
	mu     sync.Mutex
	roller *dice.Roller
}

// NewGenerator builds a generator seeded for reproducible runs.
func NewGenerator(seed int64) *Generator {
	return &Generator{roller: dice.NewRoller(seed)}
}

// NewGeneratorFromSource builds a generator over an explicit dice source,
// used by tests to script the output.
func NewGeneratorFromSource(src dice.Source) *Generator {
	return &Generator{roller: dice.NewRollerFromSource(src)}
}

// GenerateDayWeather rolls one day of weather.
func (g *Generator) GenerateDayWeather(ctx context.Context) (weather.Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec := weather.Record{}

	// Sailing wind most days, 7 to 25 mph. One day in twenty a gale blows
	// up; one in twenty the air goes dead.
	rec.Wind.SpeedMPH = g.roller.RollN(2, 10) + 5
	switch {
	case g.roller.Chance(5):
		rec.Wind.SpeedMPH += 30 + g.roller.Die(25)
	case g.roller.Chance(5):
		rec.Wind.SpeedMPH = g.roller.Die(4)
	}
	rec.Wind.Direction = compassPoints[g.roller.Between(0, len(compassPoints)-1)]

	rec.Temperature.High = 55 + g.roller.Die(25)
	rec.Temperature.Low = rec.Temperature.High - 5 - g.roller.Die(15)

	if g.roller.Chance(30) {
		rec.Precipitation.Type = precipitationTypes[g.roller.Between(0, len(precipitationTypes)-1)]
		rec.Precipitation.DurationHours = g.roller.Die(8)
		rec.Sky = "overcast"
	} else if g.roller.Chance(40) {
		rec.Sky = "partly cloudy"
	} else {
		rec.Sky = "clear"
	}
	if rec.Wind.SpeedMPH >= 50 {
		rec.Sky = "storm clouds"
	}

	return rec, nil
}

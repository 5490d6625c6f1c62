// Package weather turns a day's weather record into sailing motion: speed
// under sail, rowing fallback, and the piloting hazard the helm must beat.
package weather

import (
	"fmt"
	"strings"
)

// Temperature is the day's range in degrees.
type Temperature struct {
	High int `json:"high" yaml:"high"`
	Low  int `json:"low" yaml:"low"`
}

// Wind is the day's prevailing wind.
type Wind struct {
	SpeedMPH  int    `json:"speed_mph" yaml:"speed_mph"`
	Direction string `json:"direction" yaml:"direction"`
}

// Precipitation describes what falls from the sky and for how long.
type Precipitation struct {
	Type          string `json:"type" yaml:"type"`
	DurationHours int    `json:"duration_h" yaml:"duration_h"`
}

// Record is one day of weather as delivered by the weather adapter.
type Record struct {
	Temperature   Temperature   `json:"temperature" yaml:"temperature"`
	Wind          Wind          `json:"wind" yaml:"wind"`
	Precipitation Precipitation `json:"precipitation" yaml:"precipitation"`
	Sky           string        `json:"sky" yaml:"sky"`
}

func (r Record) String() string {
	desc := fmt.Sprintf("%s, wind %d mph %s", r.Sky, r.Wind.SpeedMPH, r.Wind.Direction)
	if r.Precipitation.Type != "" && !strings.EqualFold(r.Precipitation.Type, "none") {
		desc += ", " + r.Precipitation.Type
	}
	return desc
}

// contains reports a case-insensitive substring match across the record's
// precipitation type and sky description.
func (r Record) contains(term string) bool {
	return strings.Contains(strings.ToLower(r.Precipitation.Type), term) ||
		strings.Contains(strings.ToLower(r.Sky), term)
}

// wetSails reports precipitation that dampens the canvas and lets it hold
// more wind.
func (r Record) wetSails() bool {
	p := strings.ToLower(r.Precipitation.Type)
	switch {
	case strings.Contains(p, "drizzle"),
		strings.Contains(p, "rainstorm"),
		strings.Contains(p, "hailstorm"):
		return true
	default:
		return false
	}
}

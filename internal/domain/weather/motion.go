package weather

import (
	"fmt"

	"github.com/brinevale/voyager-go/internal/domain/dice"
)

// Rowing fallback constants: oarsmen make 8 miles a day, half that once the
// crew has rowed more than three days straight.
const (
	RowingMilesPerDay  = 8
	RowingFatigueLimit = 3
)

// Speed is the resolved sailing speed for one day.
type Speed struct {
	MilesPerDay   int    `json:"miles_per_day"`
	Becalmed      bool   `json:"becalmed"`
	WetSailsBonus int    `json:"wet_sails_bonus"`
	Note          string `json:"note"`
}

// SailingSpeed computes the day's sailing speed from the weather record and
// the ship's base speed in miles per day. The roller is consumed only for
// the wet-sails bonus.
func SailingSpeed(record Record, baseSpeed int, roller *dice.Roller) Speed {
	wind := record.Wind.SpeedMPH

	var speed int
	var note string
	switch {
	case wind < 5:
		return Speed{Becalmed: true, Note: "Becalmed; sails hang slack"}
	case wind < 20:
		speed = baseSpeed - 8*((20-wind)/10)
		if speed < 1 {
			speed = 1
		}
		note = "Light winds"
	case wind <= 30:
		speed = baseSpeed
		note = "Good sailing winds"
	default:
		speed = baseSpeed + 16*((wind-30)/10)
		note = "Strong following winds"
	}

	result := Speed{MilesPerDay: speed, Note: note}
	if record.wetSails() {
		u := roller.Between(5, 10)
		result.WetSailsBonus = speed * u / 100
		result.MilesPerDay += result.WetSailsBonus
		result.Note += "; wet sails"
	}
	return result
}

// ApplyHullPenalty reduces a day's speed by the hull-damage penalty percent.
func ApplyHullPenalty(miles, penaltyPercent int) int {
	if penaltyPercent <= 0 {
		return miles
	}
	if penaltyPercent >= 100 {
		return 0
	}
	return miles * (100 - penaltyPercent) / 100
}

// RowingSpeed returns the miles made under oars given how many consecutive
// days the crew has already rowed before today.
func RowingSpeed(consecutiveDays int) Speed {
	speed := RowingMilesPerDay
	note := "Becalmed; making way under oars"
	if consecutiveDays > RowingFatigueLimit {
		speed /= 2
		note = "Becalmed; rowers fatigued"
	}
	return Speed{MilesPerDay: speed, Becalmed: true, Note: note}
}

// Severity grades a weather hazard for the piloting check.
type Severity string

const (
	SeverityNone     Severity = "NONE"
	SeverityMinor    Severity = "MINOR"
	SeverityMajor    Severity = "MAJOR"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) String() string {
	return string(s)
}

// Hazard is the day's piloting hazard: a severity plus the penalty applied
// to the helm's piloting check. Fog thickens any hazard without raising its
// severity past Minor on its own.
type Hazard struct {
	Severity        Severity `json:"severity"`
	PilotingPenalty int      `json:"piloting_penalty"`
	Description     string   `json:"description"`
}

// Present reports whether a piloting check is required at all.
func (h Hazard) Present() bool {
	return h.Severity != SeverityNone
}

// ClassifyHazard grades the day's weather for the helm.
func ClassifyHazard(record Record) Hazard {
	wind := record.Wind.SpeedMPH

	var hazard Hazard
	switch {
	case record.contains("hurricane") || wind >= 75:
		hazard = Hazard{Severity: SeverityCritical, PilotingPenalty: 10, Description: "Hurricane-force storm"}
	case record.contains("gale") || wind >= 50:
		hazard = Hazard{Severity: SeverityMajor, PilotingPenalty: 5, Description: "Gale"}
	case record.contains("thunderstorm") || record.contains("tropical storm") || wind >= 30:
		hazard = Hazard{Severity: SeverityMinor, PilotingPenalty: 2, Description: "Storm winds"}
	}

	if record.contains("fog") {
		fogPenalty := 3
		if record.contains("heavy fog") {
			fogPenalty = 6
		}
		hazard.PilotingPenalty += fogPenalty
		if hazard.Severity == SeverityNone {
			hazard.Severity = SeverityMinor
			hazard.Description = "Fog"
		} else {
			hazard.Description += " in fog"
		}
	}

	return hazard
}

// HazardDamage rolls hull damage for a failed piloting check, by severity
// and miss margin.
func HazardDamage(severity Severity, missMargin int, roller *dice.Roller) int {
	if missMargin < 1 {
		return 0
	}

	// Damage bands by miss margin: [1,2], [3,4], [5,7], 8+.
	band := 0
	switch {
	case missMargin <= 2:
		band = 0
	case missMargin <= 4:
		band = 1
	case missMargin <= 7:
		band = 2
	default:
		band = 3
	}

	roll := func(expr string) int {
		v, err := roller.Roll(expr)
		if err != nil {
			panic(fmt.Sprintf("weather: bad damage expression %q: %v", expr, err))
		}
		return v
	}

	switch severity {
	case SeverityMinor:
		return roll([]string{"1", "1d3+1", "1d4+2", "1d4+2"}[band])
	case SeverityMajor:
		return roll([]string{"1", "1d3+1", "1d5+3", "1d5+3"}[band])
	case SeverityCritical:
		return roll([]string{"1d3+1", "1d4+2", "1d5+3", "1d6+4"}[band])
	default:
		return 0
	}
}

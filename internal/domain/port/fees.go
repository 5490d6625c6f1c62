// Package port prices everything a harbor charges or offers a visiting
// ship: entry fees and moorage, repair yards, crew hiring, and passenger or
// charter bookings.
package port

import (
	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/ship"
)

// smallShipHullMax: ships this small always take a berth and may hire crew
// anywhere.
const smallShipHullMax = 5

// berthAvailableChancePercent is the chance a berth is free on arrival.
const berthAvailableChancePercent = 80

// anchorFeePerDay is the flat daily fee for riding at anchor.
const anchorFeePerDay = 5

// FeeAssessment itemizes the port fees for one visit, paid in full on entry.
type FeeAssessment struct {
	Entrance int  `json:"entrance"`
	Pilot    int  `json:"pilot"`
	Moorage  int  `json:"moorage"`
	Days     int  `json:"days"`
	Berthed  bool `json:"berthed"`
}

// Total sums the visit's fees.
func (f FeeAssessment) Total() int {
	return f.Entrance + f.Pilot + f.Moorage
}

// AssessFees prices a port visit of the given length. Entrance is 1d10+10,
// the harbor pilot charges one gp per hull point, and moorage is a berth at
// one gp per hull point per day when one is free and the ship wants it
// (needing repair, or small enough to be manhandled ashore), otherwise
// anchorage at five gp per day.
func AssessFees(roller *dice.Roller, vessel *ship.Ship, days int) FeeAssessment {
	assessment := FeeAssessment{
		Entrance: roller.Die(10) + 10,
		Pilot:    vessel.Hull.Max,
		Days:     days,
	}

	berthFree := roller.Chance(berthAvailableChancePercent)
	wantsBerth := vessel.Hull.DamagePercent() > 10 || vessel.Hull.Max <= smallShipHullMax
	if berthFree && wantsBerth {
		assessment.Berthed = true
		assessment.Moorage = vessel.Hull.Max * days
	} else {
		assessment.Moorage = anchorFeePerDay * days
	}
	return assessment
}

package port

import (
	"github.com/brinevale/voyager-go/internal/domain/ship"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// HiringAllowed reports whether the port's labor pool can crew the vessel.
// Small ships find hands anywhere; larger ones need at least a minor port.
func HiringAllowed(size world.PortSize, vessel *ship.Ship) bool {
	if vessel.Hull.Max <= smallShipHullMax {
		return true
	}
	return size != world.PortSizeAnchorage
}

// CrewShortfall totals the missing headcount against the template.
func CrewShortfall(vessel *ship.Ship, template *ship.Template) (map[ship.CrewRole]int, int) {
	shortfall := vessel.RequiredCrew(template)
	total := 0
	for _, n := range shortfall {
		total += n
	}
	return shortfall, total
}

// ShouldAutoHire is the automatic hiring policy: fill the muster when more
// than a fifth of the required complement is missing.
func ShouldAutoHire(shortfallTotal, requiredTotal int) bool {
	if requiredTotal <= 0 {
		return false
	}
	return shortfallTotal*100 > requiredTotal*20
}

// HireCrew signs on the shortfall, role by role, and returns how many hands
// joined. Wages accrue from signing and are settled at voyage end.
func HireCrew(vessel *ship.Ship, shortfall map[ship.CrewRole]int) int {
	hired := 0
	for role, count := range shortfall {
		if count <= 0 {
			continue
		}
		vessel.Crew = vessel.Crew.Adjust(role, count)
		hired += count
	}
	return hired
}

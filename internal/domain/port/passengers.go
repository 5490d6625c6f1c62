package port

import (
	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// passengerFarePer500Miles is the fare per passenger per 500 miles begun.
const passengerFarePer500Miles = 20

// charterChancePercent is the chance a charter offer is waiting in port.
const charterChancePercent = 5

// PassengerBooking is the paying passengers picked up for the remaining
// route.
type PassengerBooking struct {
	Count   int `json:"count"`
	Revenue int `json:"revenue"`
}

// BookPassengers rolls for passengers wanting passage: 2d4 less 1d4 plus
// the port-size modifier, floored at zero, each paying 20 gp per 500 miles
// of remaining route.
func BookPassengers(roller *dice.Roller, size world.PortSize, remainingMiles int) PassengerBooking {
	count := roller.RollN(2, 4) - roller.Die(4) + size.MerchantModifier()
	if count < 0 {
		count = 0
	}
	return PassengerBooking{
		Count:   count,
		Revenue: count * passengerFarePer500Miles * ((remainingMiles + 499) / 500),
	}
}

// Charter is a one-off freight contract offered in port.
type Charter struct {
	DistanceMiles int `json:"distance_miles"`
	Fee           int `json:"fee"`
}

// RollCharter checks for a charter opportunity (five percent per visit).
// An offered charter runs 2d20 x 100 miles for 40 gp per 500 miles, never
// under 100. Refusing one has no effect.
func RollCharter(roller *dice.Roller) (Charter, bool) {
	if !roller.Chance(charterChancePercent) {
		return Charter{}, false
	}
	distance := roller.RollN(2, 20) * 100
	fee := (distance + 499) / 500 * 40
	if fee < 100 {
		fee = 100
	}
	return Charter{DistanceMiles: distance, Fee: fee}, true
}

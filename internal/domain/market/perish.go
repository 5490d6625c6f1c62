package market

import (
	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/trading"
)

// spoilChancePercent is the chance each excess distance step rots part of
// the cargo.
const spoilChancePercent = 25

// SpoilStep records one step of the perishability cascade.
type SpoilStep struct {
	Threshold int  `json:"threshold"` // miles the step's category tolerates
	Spoiled   int  `json:"spoiled"`
	Remaining int  `json:"remaining"`
	Rotted    bool `json:"rotted"`
}

// PerishResult is the outcome of carrying cargo past its distance category.
type PerishResult struct {
	Category  trading.DistanceCategory `json:"category"`
	Steps     []SpoilStep              `json:"steps,omitempty"`
	Spoiled   int                      `json:"spoiled"`
	Remaining int                      `json:"remaining"`
}

// TotalLoss reports that nothing survived the haul.
func (r PerishResult) TotalLoss() bool {
	return r.Remaining == 0 && r.Spoiled > 0
}

// ResolvePerish walks the cargo through the distance categories beyond the
// one the sale rolled. Each category the actual distance exceeds is one
// step; each step has a 25% chance to rot a quarter of the remaining loads,
// rounded up. Steps resolve serially, so late steps rot an already reduced
// hold.
func ResolvePerish(roller *dice.Roller, category trading.DistanceCategory, actualMiles, loads int) PerishResult {
	result := PerishResult{Category: category, Remaining: loads}

	for current := category; current != trading.DistanceExtraordinary && actualMiles > current.PerishThresholdMiles(); current = current.Next() {
		step := SpoilStep{Threshold: current.PerishThresholdMiles(), Remaining: result.Remaining}
		if result.Remaining > 0 && roller.Die(100) <= spoilChancePercent {
			step.Rotted = true
			step.Spoiled = (result.Remaining + 3) / 4
			result.Spoiled += step.Spoiled
			result.Remaining -= step.Spoiled
			step.Remaining = result.Remaining
		}
		result.Steps = append(result.Steps, step)
	}
	return result
}

package encounter

import (
	"fmt"
	"strings"

	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// Chance a size L/G creature with no explicit threat listing turns
// aggressive, in percent.
const aggressiveChancePercent = 15

// Result is a fully resolved encounter.
type Result struct {
	TimeOfDay       TimeOfDay      `json:"time_of_day"`
	WaterType       world.WaterType `json:"water_type"`
	Creature        string         `json:"creature"`
	Category        string         `json:"category"`
	Classification  Classification `json:"classification"`
	DistanceYards   int            `json:"distance_yards"`
	Surprised       bool           `json:"surprised"`
	SurpriseSegments int           `json:"surprise_segments"`
	NumberAppearing int            `json:"number_appearing"`
	IsUnintelligent bool           `json:"is_unintelligent"`
	CanBeDrivenOff  bool           `json:"can_be_driven_off"`
	Entry           Entry          `json:"-"`
}

// Engine runs encounter checks against a loaded table.
type Engine struct {
	table Table
}

// NewEngine creates an engine over the given encounter table.
func NewEngine(table Table) *Engine {
	return &Engine{table: table}
}

// Check rolls one scheduled encounter check. An encounter occurs only on a
// natural 1 on d20; the second return reports whether anything happened.
func (e *Engine) Check(roller *dice.Roller, water world.WaterType, slot TimeOfDay) (*Result, bool, error) {
	if roller.D20() != 1 {
		return nil, false, nil
	}
	result, err := e.Resolve(roller, water, slot)
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

// Resolve rolls frequency, creature, number, distance and surprise for an
// encounter that is already known to occur.
func (e *Engine) Resolve(roller *dice.Roller, water world.WaterType, slot TimeOfDay) (*Result, error) {
	class := FrequencyForRoll(roller.Percent())

	entries, err := e.table.bucket(water, class)
	if err != nil {
		return nil, err
	}
	entry := entries[roller.Between(0, len(entries)-1)]

	result := &Result{
		TimeOfDay:       slot,
		WaterType:       water,
		Creature:        entry.Name,
		Category:        entry.Category,
		IsUnintelligent: entry.IsUnintelligent(),
		Entry:           entry,
	}

	// Number appearing from the entry's dice expression; "-" means one.
	number := 1
	if expr, err := dice.ParseExpression(entry.Number); err == nil {
		number = expr.Eval(roller)
	}
	if number < 1 {
		number = 1
	}
	result.NumberAppearing = number

	// Submergers surface close aboard; everything else shows at line of
	// sight.
	base := roller.RollN(6, 4)
	if entry.CanSubmerge() {
		result.DistanceYards = base
	} else {
		result.DistanceYards = base * 10
	}

	// Surprise: base 2-in-6 unless the entry overrides. Each surprise
	// segment closes ten yards of warning.
	threshold := entry.Surprise
	if threshold <= 0 {
		threshold = 2
	}
	surpriseRoll := roller.Die(6)
	if surpriseRoll <= threshold {
		result.Surprised = true
		result.SurpriseSegments = surpriseRoll
		result.DistanceYards -= surpriseRoll * 10
		if result.DistanceYards < 10 {
			result.DistanceYards = 10
		}
	}

	result.Classification = e.classify(roller, entry)
	result.CanBeDrivenOff = result.Classification == ClassThreat && result.IsUnintelligent
	return result, nil
}

// classify tags the encounter. Hazards and interactive meetings come from
// name sets; threats are either explicit or large creatures that roll
// aggressive; everything else is a sighting.
func (e *Engine) classify(roller *dice.Roller, entry Entry) Classification {
	switch {
	case entry.IsHazard():
		return ClassHazard
	case entry.IsInteractive():
		return ClassInteractive
	case entry.isExplicitThreat():
		return ClassThreat
	case entry.isLarge() && roller.Chance(aggressiveChancePercent):
		return ClassThreat
	default:
		return ClassSighting
	}
}

// Describe renders a short narration line for the event log.
func (r *Result) Describe() string {
	name := strings.ToLower(r.Creature)
	switch r.Classification {
	case ClassHazard:
		return fmt.Sprintf("Ran into %s at %s", name, r.TimeOfDay)
	case ClassThreat:
		return fmt.Sprintf("%s threatened the ship at %s, %d yards off (%d appearing)",
			r.Creature, r.TimeOfDay, r.DistanceYards, r.NumberAppearing)
	case ClassInteractive:
		return fmt.Sprintf("Met %s at %s", name, r.TimeOfDay)
	default:
		return fmt.Sprintf("Spotted %s at %s, %d yards off", name, r.TimeOfDay, r.DistanceYards)
	}
}

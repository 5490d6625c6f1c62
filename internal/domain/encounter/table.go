// Package encounter rolls and resolves sea encounters: the per-day check
// schedule for a water type, creature selection from frequency tables,
// distance/surprise/number resolution, threat classification, and the ship
// damage a threat or hazard inflicts.
package encounter

import (
	"fmt"
	"strings"

	"github.com/brinevale/voyager-go/internal/domain/world"
)

// TimeOfDay names an encounter check slot.
type TimeOfDay string

const (
	TimeDawn     TimeOfDay = "DAWN"
	TimeMorning  TimeOfDay = "MORNING"
	TimeNoon     TimeOfDay = "NOON"
	TimeEvening  TimeOfDay = "EVENING"
	TimeMidnight TimeOfDay = "MIDNIGHT"
)

func (t TimeOfDay) String() string {
	s := strings.ToLower(string(t))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Schedule returns the daily encounter check slots for a water type. Fresh
// water is busiest; deep water sees one check at noon.
func Schedule(water world.WaterType) []TimeOfDay {
	switch water {
	case world.WaterFresh:
		return []TimeOfDay{TimeMorning, TimeEvening, TimeMidnight}
	case world.WaterCoastal, world.WaterShallow:
		return []TimeOfDay{TimeDawn, TimeNoon}
	case world.WaterDeep:
		return []TimeOfDay{TimeNoon}
	default:
		return []TimeOfDay{TimeNoon}
	}
}

// FrequencyClass buckets how often a creature turns up.
type FrequencyClass string

const (
	FrequencyCommon   FrequencyClass = "COMMON"
	FrequencyUncommon FrequencyClass = "UNCOMMON"
	FrequencyRare     FrequencyClass = "RARE"
	FrequencyVeryRare FrequencyClass = "VERY_RARE"
)

// FrequencyForRoll maps a d100 to a frequency class.
func FrequencyForRoll(roll int) FrequencyClass {
	switch {
	case roll <= 65:
		return FrequencyCommon
	case roll <= 85:
		return FrequencyUncommon
	case roll <= 97:
		return FrequencyRare
	default:
		return FrequencyVeryRare
	}
}

// Entry is one line of an encounter table.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"` // e.g. FISH, AERIAL, SHIP, HAZARD
	Size     string `json:"size" yaml:"size"`         // S, M, L or G
	HitDice  int    `json:"hit_dice" yaml:"hit_dice"`
	Number   string `json:"number" yaml:"number"`     // dice expression; "-" means one
	Surprise int    `json:"surprise" yaml:"surprise"` // "surprise N in 6"; 0 means the base 2
	Capsize  bool   `json:"capsize" yaml:"capsize"`
}

// Table holds encounter entries keyed by water type and frequency class.
type Table map[world.WaterType]map[FrequencyClass][]Entry

// bucket returns the entries for the water/class pair. Missing buckets fall
// back to the common bucket for the same water.
func (t Table) bucket(water world.WaterType, class FrequencyClass) ([]Entry, error) {
	byClass, ok := t[water]
	if !ok {
		return nil, fmt.Errorf("no encounter table for water %s", water)
	}
	entries := byClass[class]
	if len(entries) == 0 {
		entries = byClass[FrequencyCommon]
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty encounter table for %s/%s", water, class)
	}
	return entries, nil
}

// Pick selects an entry for the water/class pair, wrapping the index over
// the bucket.
func (t Table) Pick(water world.WaterType, class FrequencyClass, index int) (Entry, error) {
	entries, err := t.bucket(water, class)
	if err != nil {
		return Entry{}, err
	}
	return entries[index%len(entries)], nil
}

// Classification tags what kind of encounter resulted.
type Classification string

const (
	ClassHazard      Classification = "HAZARD"
	ClassInteractive Classification = "INTERACTIVE"
	ClassThreat      Classification = "THREAT"
	ClassSighting    Classification = "SIGHTING"
)

func (c Classification) String() string {
	return string(c)
}

// Name sets driving classification and behaviour. Matching is by lowercase
// substring so table entries like "Reef, submerged" still classify.

var hazardNames = []string{"seaweed", "shoals", "whirlpool", "maelstrom", "ice", "reef"}

var interactiveNames = []string{"merchant", "island", "omen", "fishing fleet", "patrol"}

var explicitThreatNames = []string{
	"pirate", "buccaneer", "merrow", "scrag", "ogre", "troll", "giant",
	"sea serpent", "dragon turtle", "kraken",
}

var submergerNames = []string{
	"shark", "whale", "squid", "octopus", "sea serpent", "dragon turtle",
	"kraken", "merrow", "scrag", "eel", "turtle",
}

var unintelligentNames = []string{
	"shark", "squid", "octopus", "eel", "crab", "snake", "sea serpent",
	"whale", "turtle", "fish", "ray",
}

func nameMatches(name string, set []string) bool {
	lower := strings.ToLower(name)
	for _, term := range set {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// IsHazard reports whether the entry is a navigation hazard rather than a
// creature.
func (e Entry) IsHazard() bool {
	return strings.EqualFold(e.Category, "HAZARD") || nameMatches(e.Name, hazardNames)
}

// IsInteractive reports merchant ships, islands, omens and similar
// non-hostile meetings.
func (e Entry) IsInteractive() bool {
	return nameMatches(e.Name, interactiveNames)
}

// CanSubmerge reports whether the creature surfaces next to the hull rather
// than appearing at line of sight.
func (e Entry) CanSubmerge() bool {
	return nameMatches(e.Name, submergerNames)
}

// IsUnintelligent reports whether flaming oil or thrown food can work on it.
func (e Entry) IsUnintelligent() bool {
	return nameMatches(e.Name, unintelligentNames)
}

// isExplicitThreat reports names that always threaten the ship.
func (e Entry) isExplicitThreat() bool {
	return nameMatches(e.Name, explicitThreatNames)
}

// isLarge reports size class L or G.
func (e Entry) isLarge() bool {
	return e.Size == "L" || e.Size == "G"
}

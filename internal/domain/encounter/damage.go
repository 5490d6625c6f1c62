package encounter

import (
	"fmt"
	"strings"

	"github.com/brinevale/voyager-go/internal/domain/dice"
)

// DamageClass buckets how a threat harms the ship.
type DamageClass string

const (
	DamagePirate   DamageClass = "PIRATE"
	DamageAerial   DamageClass = "AERIAL"
	DamageLarge    DamageClass = "LARGE"
	DamageBoarding DamageClass = "BOARDING"
	DamageSmall    DamageClass = "SMALL"
)

var boardingNames = []string{"merrow", "scrag", "ogre", "troll", "giant"}

var aerialNames = []string{"roc", "harpy", "dragon", "griffon", "wyvern"}

// ClassifyDamage buckets a threat entry for the damage model.
func ClassifyDamage(entry Entry) DamageClass {
	switch {
	case nameMatches(entry.Name, []string{"pirate", "buccaneer"}):
		return DamagePirate
	case strings.EqualFold(entry.Category, "AERIAL") || nameMatches(entry.Name, aerialNames):
		return DamageAerial
	case nameMatches(entry.Name, boardingNames):
		return DamageBoarding
	case entry.isLarge():
		return DamageLarge
	default:
		return DamageSmall
	}
}

// Damage is the hull and crew harm from one resolved threat or hazard.
type Damage struct {
	Class          DamageClass `json:"class"`
	HullDamage     int         `json:"hull_damage"`
	CrewLoss       int         `json:"crew_loss"`
	SpeedHalved    bool        `json:"speed_halved"`    // seaweed fouling
	ExtraCheck     bool        `json:"extra_check"`     // seaweed: another check this day
	Holed          bool        `json:"holed"`           // ice below the waterline
	Note           string      `json:"note"`
}

// ThreatDamage computes hull/crew damage for a threat encounter.
func ThreatDamage(result *Result, roller *dice.Roller) Damage {
	entry := result.Entry
	class := ClassifyDamage(entry)
	damage := Damage{Class: class}

	totalHD := entry.HitDice * result.NumberAppearing

	switch class {
	case DamagePirate:
		damage.HullDamage = roller.Die(6)
		damage.Note = "boarding action"
	case DamageAerial:
		damage.HullDamage = roller.Die(4)
		damage.Note = "rigging and sails torn"
	case DamageLarge, DamageBoarding:
		k := 2 * (totalHD / 10)
		if k < 2 {
			k = 2
		}
		damage.HullDamage = roller.Die(k)
		damage.Note = "hull battered"
	default:
		damage.Note = "no harm done"
	}

	// Big enough packs that can reach the deck drag crew overboard.
	if totalHD >= 6 && reachesDeck(class) {
		damage.CrewLoss = roller.Die(4)
	}
	return damage
}

// reachesDeck reports whether the threat can take crew off the deck.
func reachesDeck(class DamageClass) bool {
	switch class {
	case DamageBoarding, DamagePirate, DamageAerial:
		return true
	default:
		return false
	}
}

// Ice holes the ship on a 10% roll.
const iceHolingChancePercent = 10

// Seaweed fouls the way and sometimes forces another encounter check.
const seaweedExtraCheckPercent = 40

// HazardDamage computes the effect of a navigation hazard encounter.
func HazardDamage(result *Result, roller *dice.Roller) Damage {
	name := strings.ToLower(result.Creature)
	damage := Damage{Class: DamageSmall}

	switch {
	case strings.Contains(name, "whirlpool"), strings.Contains(name, "maelstrom"):
		damage.HullDamage = roller.RollN(2, 10)
		damage.Note = fmt.Sprintf("fought clear of the %s", name)
	case strings.Contains(name, "ice"):
		damage.HullDamage = roller.Die(6)
		if roller.Chance(iceHolingChancePercent) {
			damage.Holed = true
			damage.Note = "holed below the waterline by ice"
		} else {
			damage.Note = "scraped through drifting ice"
		}
	case strings.Contains(name, "reef"), strings.Contains(name, "shoals"):
		damage.HullDamage = roller.RollN(2, 6)
		damage.Note = "grounded briefly on " + name
	case strings.Contains(name, "seaweed"):
		damage.SpeedHalved = true
		damage.ExtraCheck = roller.Chance(seaweedExtraCheckPercent)
		damage.Note = "fouled in drifting seaweed"
	}
	return damage
}

// Mitigation outcomes for driving off an unintelligent threat.

const (
	flameOilChancePercent        = 75
	flameOilBurningChancePercent = 90
	foodChancePercent            = 50
)

// AttemptFlamingOil tries to drive off an unintelligent threat with flaming
// oil. Burning means the oil was already alight when thrown.
func AttemptFlamingOil(result *Result, roller *dice.Roller, burning bool) bool {
	if !result.CanBeDrivenOff {
		return false
	}
	chance := flameOilChancePercent
	if burning {
		chance = flameOilBurningChancePercent
	}
	return roller.Chance(chance)
}

// AttemptFood tries to end the encounter by throwing food over the side.
func AttemptFood(result *Result, roller *dice.Roller) bool {
	if !result.CanBeDrivenOff {
		return false
	}
	return roller.Chance(foodChancePercent)
}

// CapsizeChancePercent derives the chance a gargantuan creature or capsize-
// capable entry turns the ship over, from the hull maximum. Small hulls are
// easiest to roll.
func CapsizeChancePercent(hullMax int) int {
	base := 10
	switch {
	case hullMax <= 10:
		return base + 15
	case hullMax <= 20:
		return base + 10
	case hullMax <= 40:
		return base + 5
	case hullMax >= 80:
		return base - 10
	case hullMax >= 60:
		return base - 5
	default:
		return base
	}
}

// CanCapsize reports whether the encounter threatens a capsize at all.
func CanCapsize(result *Result) bool {
	return result.Entry.Capsize || result.Entry.Size == "G"
}

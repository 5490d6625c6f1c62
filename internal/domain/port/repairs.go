package port

import (
	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// RepairMethod names one of the three ways to put hull points back.
type RepairMethod string

const (
	RepairProfessional RepairMethod = "PROFESSIONAL"
	RepairDrydock      RepairMethod = "DRYDOCK"
	RepairSelf         RepairMethod = "SELF"
)

// RepairQuote prices a repair option. DaysOrWeeks is days for yard work and
// weeks for self-repair; Points is how much hull it restores.
type RepairQuote struct {
	Method RepairMethod `json:"method"`
	Cost   int          `json:"cost"`
	Days   int          `json:"days"`
	Points int          `json:"points"`
}

// QuoteProfessional prices yard repair: 100 gp and one day per hull point,
// restoring to full.
func QuoteProfessional(damage int) RepairQuote {
	return RepairQuote{
		Method: RepairProfessional,
		Cost:   100 * damage,
		Days:   damage,
		Points: damage,
	}
}

// drydockDailyFee is the daily drydock charge: five gp per hull point,
// discounted by half at a major port and marked up by half at a minor one,
// rounded to the nearest gp.
func drydockDailyFee(hullMax int, size world.PortSize) int {
	base := hullMax * 5
	switch size {
	case world.PortSizeMajor:
		return (base + 1) / 2
	case world.PortSizeMinor:
		return (base*3 + 1) / 2
	default:
		return base
	}
}

// QuoteDrydock prices drydock repair: the professional rate plus the dock
// fee for ceil(damage * 0.6) days.
func QuoteDrydock(hullMax, damage int, size world.PortSize) RepairQuote {
	days := (damage*3 + 4) / 5
	return RepairQuote{
		Method: RepairDrydock,
		Cost:   100*damage + days*drydockDailyFee(hullMax, size),
		Days:   days,
		Points: damage,
	}
}

// selfRepairSkill picks the skill the captain brings to the work, or false
// when the officers cannot repair a ship themselves.
func selfRepairSkill(checker *proficiency.Checker) (proficiency.Skill, bool) {
	for _, skill := range []proficiency.Skill{proficiency.SkillShipCarpentry, proficiency.SkillShipwright} {
		if checker.Captain.HasSkill(skill) {
			return skill, true
		}
	}
	return "", false
}

// CanSelfRepair reports whether the officers have a repair trade.
func CanSelfRepair(checker *proficiency.Checker) bool {
	_, ok := selfRepairSkill(checker)
	return ok
}

// TemporaryPatch is a botched self-repair point that will work loose.
type TemporaryPatch struct {
	Point        int `json:"point"`          // 1-based index into the repair
	ExpiresAfter int `json:"expires_after"`  // days until the patch fails
}

// SelfRepairOutcome is the result of officer-led repairs: points restored,
// one week and 50 gp each, with any failed checks leaving temporary patches.
type SelfRepairOutcome struct {
	Quote   RepairQuote      `json:"quote"`
	Patches []TemporaryPatch `json:"patches,omitempty"`
}

// PerformSelfRepair repairs up to half the hull (never more than the
// damage) at 50 gp and a week per point. Each point rolls the captain's
// repair skill; a failure still holds, but only as a temporary patch good
// for 1d6 days.
func PerformSelfRepair(roller *dice.Roller, checker *proficiency.Checker, hullMax, damage int) (SelfRepairOutcome, bool) {
	skill, ok := selfRepairSkill(checker)
	if !ok {
		return SelfRepairOutcome{}, false
	}

	points := hullMax / 2
	if damage < points {
		points = damage
	}
	outcome := SelfRepairOutcome{Quote: RepairQuote{
		Method: RepairSelf,
		Cost:   50 * points,
		Days:   points * 7,
		Points: points,
	}}

	for i := 1; i <= points; i++ {
		if check := checker.Check(roller, skill, 0); !check.Success {
			outcome.Patches = append(outcome.Patches, TemporaryPatch{
				Point:        i,
				ExpiresAfter: roller.Die(6),
			})
		}
	}
	return outcome, true
}

// DecideRepair is the automatic repair policy: take the professional yard
// when damage has reached ten percent and the treasury covers it, otherwise
// sail on.
func DecideRepair(damagePercent, treasury, professionalCost int) bool {
	return damagePercent >= 10 && treasury >= professionalCost
}

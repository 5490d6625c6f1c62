package proficiency

import (
	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/shared"
)

// CheckResult carries the full outcome of a d20 skill check.
//
// Roll is the effective roll (d20 plus penalties minus bonuses), Needed the
// target number. Success means Roll <= Needed. MissMargin is how badly the
// check missed (0 on success); SuccessMargin how comfortably it passed
// (0 on failure). Attempted is false when the character lacks the skill and
// no unskilled fallback exists, in which case the check counts as a neutral
// non-attempt rather than a botch.
type CheckResult struct {
	Skill         Skill `json:"skill"`
	Attempted     bool  `json:"attempted"`
	Success       bool  `json:"success"`
	Roll          int   `json:"roll"`
	Die           int   `json:"die"`
	Needed        int   `json:"needed"`
	MissMargin    int   `json:"miss_margin"`
	SuccessMargin int   `json:"success_margin"`
}

// OddFailure reports a failed check whose die came up odd. Several market
// rules only apply a penalty on odd-numbered failures.
func (r CheckResult) OddFailure() bool {
	return r.Attempted && !r.Success && r.Die%2 == 1
}

// Checker runs skill checks for a captain/lieutenant pair against a crew of
// a given quality. Penalties add to the roll, bonuses subtract from it; the
// check succeeds when the adjusted roll stays at or under the target.
type Checker struct {
	Captain    *Officer
	Lieutenant *Officer
	Quality    shared.CrewQuality
}

// NewChecker builds a checker for the officer pair.
func NewChecker(captain, lieutenant *Officer, quality shared.CrewQuality) *Checker {
	return &Checker{Captain: captain, Lieutenant: lieutenant, Quality: quality}
}

// Check runs a skill check for the captain with an extra penalty (positive
// makes the check harder, e.g. the +5 piloting penalty in a gale).
func (c *Checker) Check(roller *dice.Roller, skill Skill, penalty int) CheckResult {
	return c.checkFor(roller, c.Captain, skill, penalty)
}

// checkFor resolves the check for a specific character.
func (c *Checker) checkFor(roller *dice.Roller, who *Officer, skill Skill, penalty int) CheckResult {
	result := CheckResult{Skill: skill}

	needed, known := TargetNumber(skill, who.Abilities)
	if !known {
		return result
	}

	if !who.HasSkill(skill) {
		// Piloting is the one skill that may be attempted unskilled,
		// at WIS - 4 instead of WIS + 1.
		if skill != SkillPiloting {
			return result
		}
		needed = who.Abilities.Wisdom + unskilledPilotingAdjustment
	}

	bonus := c.Quality.Modifier()

	// A skilled lieutenant assists most checks. Smuggling and piloting are
	// solitary work and get no assist.
	if skill != SkillSmuggling && skill != SkillPiloting && c.Lieutenant.HasSkill(skill) {
		bonus++
	}

	// Knowing how inspectors work makes contraband easier to hide.
	if skill == SkillSmuggling &&
		(c.Captain.HasSkill(SkillCustomsInspection) || c.Lieutenant.HasSkill(SkillCustomsInspection)) {
		bonus++
	}

	die := roller.D20()
	roll := die + penalty - bonus

	result.Attempted = true
	result.Die = die
	result.Roll = roll
	result.Needed = needed
	result.Success = roll <= needed
	if result.Success {
		result.SuccessMargin = needed - roll
	} else {
		result.MissMargin = roll - needed
	}
	return result
}

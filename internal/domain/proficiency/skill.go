// Package proficiency maps officer ability scores and learned skills to d20
// check outcomes. Checks are roll-under: a check succeeds when
// d20 + penalties - bonuses is at most the skill's target number.
package proficiency

import "fmt"

// Skill identifies a learned proficiency in the maritime skill vocabulary.
type Skill string

const (
	SkillBargaining        Skill = "BARGAINING"
	SkillPiloting          Skill = "PILOTING"
	SkillNavigation        Skill = "NAVIGATION"
	SkillSmuggling         Skill = "SMUGGLING"
	SkillSeamanship        Skill = "SEAMANSHIP"
	SkillAppraisal         Skill = "APPRAISAL"
	SkillTrade             Skill = "TRADE"
	SkillCustomsInspection Skill = "CUSTOMS_INSPECTION"
	SkillShipCarpentry     Skill = "SHIP_CARPENTRY"
	SkillShipwright        Skill = "SHIPWRIGHT"
)

// AllSkills returns the full skill vocabulary.
func AllSkills() []Skill {
	return []Skill{
		SkillBargaining,
		SkillPiloting,
		SkillNavigation,
		SkillSmuggling,
		SkillSeamanship,
		SkillAppraisal,
		SkillTrade,
		SkillCustomsInspection,
		SkillShipCarpentry,
		SkillShipwright,
	}
}

// IsValid checks the skill belongs to the vocabulary.
func (s Skill) IsValid() bool {
	switch s {
	case SkillBargaining, SkillPiloting, SkillNavigation, SkillSmuggling,
		SkillSeamanship, SkillAppraisal, SkillTrade, SkillCustomsInspection,
		SkillShipCarpentry, SkillShipwright:
		return true
	default:
		return false
	}
}

func (s Skill) String() string {
	return string(s)
}

// ParseSkill parses a string into a Skill.
func ParseSkill(raw string) (Skill, error) {
	s := Skill(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown skill: %s", raw)
	}
	return s, nil
}

// targetSpec pins a skill to an ability score and a flat adjustment. The
// target number of a check is score + adjustment.
type targetSpec struct {
	ability    Ability
	adjustment int
}

var targetTable = map[Skill]targetSpec{
	SkillBargaining:        {AbilityCharisma, -2},
	SkillPiloting:          {AbilityWisdom, 1},
	SkillNavigation:        {AbilityIntelligence, -3},
	SkillSmuggling:         {AbilityWisdom, -4},
	SkillSeamanship:        {AbilityDexterity, 1},
	SkillAppraisal:         {AbilityIntelligence, -2},
	SkillTrade:             {AbilityCharisma, -3},
	SkillCustomsInspection: {AbilityIntelligence, -1},
	SkillShipCarpentry:     {AbilityDexterity, -2},
	SkillShipwright:        {AbilityIntelligence, -2},
}

// TargetNumber computes the target number of a skill for a set of ability
// scores. The boolean is false for skills outside the table.
func TargetNumber(skill Skill, abilities Abilities) (int, bool) {
	spec, ok := targetTable[skill]
	if !ok {
		return 0, false
	}
	return abilities.Score(spec.ability) + spec.adjustment, true
}

// unskilledPilotingAdjustment is the fallback for a character attempting to
// pilot without the skill: WIS - 4 instead of WIS + 1.
const unskilledPilotingAdjustment = -4

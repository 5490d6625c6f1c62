package proficiency

import (
	"fmt"

	"github.com/brinevale/voyager-go/internal/domain/dice"
)

// Ability names one of the six ability scores.
type Ability string

const (
	AbilityStrength     Ability = "STR"
	AbilityDexterity    Ability = "DEX"
	AbilityConstitution Ability = "CON"
	AbilityIntelligence Ability = "INT"
	AbilityWisdom       Ability = "WIS"
	AbilityCharisma     Ability = "CHA"
)

// Abilities holds the six scores, each in [3,18].
type Abilities struct {
	Strength     int `json:"strength" yaml:"strength" validate:"min=3,max=18"`
	Dexterity    int `json:"dexterity" yaml:"dexterity" validate:"min=3,max=18"`
	Constitution int `json:"constitution" yaml:"constitution" validate:"min=3,max=18"`
	Intelligence int `json:"intelligence" yaml:"intelligence" validate:"min=3,max=18"`
	Wisdom       int `json:"wisdom" yaml:"wisdom" validate:"min=3,max=18"`
	Charisma     int `json:"charisma" yaml:"charisma" validate:"min=3,max=18"`
}

// Score returns the named ability score.
func (a Abilities) Score(ability Ability) int {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Validate checks every score lies in [3,18].
func (a Abilities) Validate() error {
	for _, ab := range []Ability{AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma} {
		if s := a.Score(ab); s < 3 || s > 18 {
			return fmt.Errorf("ability %s score %d out of range [3,18]", ab, s)
		}
	}
	return nil
}

// Officer is a captain or lieutenant: ability scores, a learned skill set and
// a level. Level 0 means "unset" and is filled from the level table when the
// officer takes command.
type Officer struct {
	Name      string         `json:"name" yaml:"name" validate:"required"`
	Abilities Abilities      `json:"abilities" yaml:"abilities"`
	Skills    map[Skill]bool `json:"skills" yaml:"skills"`
	Level     int            `json:"level" yaml:"level"`
}

// HasSkill reports whether the officer knows the skill. A nil officer knows
// nothing, so callers can pass an absent lieutenant directly.
func (o *Officer) HasSkill(skill Skill) bool {
	if o == nil {
		return false
	}
	return o.Skills[skill]
}

// Validate checks name and ability ranges.
func (o *Officer) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("officer name is required")
	}
	if err := o.Abilities.Validate(); err != nil {
		return fmt.Errorf("officer %s: %w", o.Name, err)
	}
	for skill := range o.Skills {
		if !skill.IsValid() {
			return fmt.Errorf("officer %s: unknown skill %s", o.Name, skill)
		}
	}
	return nil
}

// EnsureLevel fills an unset captain level from the 1d10 table:
// 1-4 gives level 5, 5-7 level 6, 8-9 level 7 and 10 level 8.
func (o *Officer) EnsureLevel(roller *dice.Roller) {
	if o == nil || o.Level > 0 {
		return
	}
	switch roll := roller.Die(10); {
	case roll <= 4:
		o.Level = 5
	case roll <= 7:
		o.Level = 6
	case roll <= 9:
		o.Level = 7
	default:
		o.Level = 8
	}
}

package market

import (
	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
)

// smugglingSkillFloor: below this target the captain will not risk the
// customs house.
const smugglingSkillFloor = 12

// smugglingTaxFloor: petty duties are simply paid.
const smugglingTaxFloor = 500

// CustomsResult records a customs assessment, including any smuggling
// attempt and its consequences.
type CustomsResult struct {
	Value          int                     `json:"value"`   // valuation the duty was levied on
	Percent        int                     `json:"percent"` // duty percent, after any penalty
	Tax            int                     `json:"tax"`
	Smuggled       bool                    `json:"smuggled"` // a smuggling attempt was made
	Caught         bool                    `json:"caught"`
	SmugglingCheck proficiency.CheckResult `json:"smuggling_check,omitempty"`
	Appraisal      proficiency.CheckResult `json:"appraisal,omitempty"`
}

// AppraiseForCustoms produces the declared valuation of cargo. A sharp
// appraisal talks the assessor down ten percent; an odd failure invites a
// ten percent markup.
func AppraiseForCustoms(roller *dice.Roller, checker *proficiency.Checker, agent *Agent, baseValue int) (int, proficiency.CheckResult) {
	appraisal := checkOrAgent(roller, checker, agent, proficiency.SkillAppraisal)
	switch {
	case appraisal.Success:
		return baseValue * 90 / 100, appraisal
	case appraisal.OddFailure():
		return baseValue * 110 / 100, appraisal
	default:
		return baseValue, appraisal
	}
}

// AssessCustoms levies the customs duty on cargo of the given base value.
//
// The duty percent is 2d10 clamped to [1,100] and applied to the
// appraisal-adjusted valuation. A captain trading without an agent will try
// to smuggle past the duty when the smuggling target is respectable and the
// duty is worth the risk; being caught multiplies both the duty and its
// percent tenfold. Agents never smuggle.
func AssessCustoms(roller *dice.Roller, checker *proficiency.Checker, agent *Agent, baseValue int) CustomsResult {
	result := CustomsResult{}
	result.Value, result.Appraisal = AppraiseForCustoms(roller, checker, agent, baseValue)

	result.Percent = roller.RollN(2, 10)
	if result.Percent < 1 {
		result.Percent = 1
	}
	if result.Percent > 100 {
		result.Percent = 100
	}
	result.Tax = result.Value * result.Percent / 100

	if agent != nil {
		return result
	}
	target, ok := proficiency.TargetNumber(proficiency.SkillSmuggling, checker.Captain.Abilities)
	if !ok || !checker.Captain.HasSkill(proficiency.SkillSmuggling) {
		return result
	}
	if target < smugglingSkillFloor || result.Tax <= smugglingTaxFloor {
		return result
	}

	result.Smuggled = true
	result.SmugglingCheck = checker.Check(roller, proficiency.SkillSmuggling, 0)
	if result.SmugglingCheck.Success {
		result.Tax = 0
	} else {
		result.Caught = true
		result.Tax *= 10
		result.Percent *= 10
	}
	return result
}

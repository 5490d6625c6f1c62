package market

import (
	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/trading"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// demandModifierForRoll maps the adjusted 3d6 demand roll to its modifier.
func demandModifierForRoll(roll int) int {
	switch {
	case roll <= 3:
		return -5
	case roll <= 5:
		return -4
	case roll == 6:
		return -3
	case roll == 7:
		return -2
	case roll <= 9:
		return -1
	case roll <= 11:
		return 0
	case roll <= 13:
		return 1
	case roll == 14:
		return 2
	case roll == 15:
		return 3
	case roll <= 17:
		return 4
	default:
		return 5
	}
}

// preciousBonusChancePercent is the chance precious cargo catches a
// collector's eye for +4.
const preciousBonusChancePercent = 10

// SaleInput describes cargo brought to a port's merchants.
type SaleInput struct {
	Category       world.CargoCategory
	Loads          int
	DistanceMiles  int // miles carried since purchase
	PortSize       world.PortSize
	Agent          *Agent // non-nil when an agent handles the sale
	DistanceToNext int    // unused by pricing; carried for the caller
}

// SaleQuote is a fully resolved sale price with its component modifiers,
// kept for the trading record.
type SaleQuote struct {
	SARoll           int                      `json:"sa_roll"`
	Percent          int                      `json:"percent"`
	PricePerLoad     int                      `json:"price_per_load"`
	Total            int                      `json:"total"`
	DemandMod        int                      `json:"demand_mod"`
	DistanceMod      int                      `json:"distance_mod"`
	DistanceCategory trading.DistanceCategory `json:"distance_category"`
	BargainMod       int                      `json:"bargain_mod"`
	AppraisalMod     int                      `json:"appraisal_mod"`
	PreciousBonus    int                      `json:"precious_bonus"`
	NoSkillPenalty   int                      `json:"no_skill_penalty"`
	MultiplierPct    int                      `json:"multiplier_pct"` // bargain margin bonus on the final price
}

// checkOrAgent runs a skill check, substituting the agent's flat skill
// target when an agent handles the transaction.
func checkOrAgent(roller *dice.Roller, checker *proficiency.Checker, agent *Agent, skill proficiency.Skill) proficiency.CheckResult {
	if agent == nil {
		return checker.Check(roller, skill, 0)
	}
	die := roller.D20()
	result := proficiency.CheckResult{Skill: skill, Attempted: true, Die: die, Roll: die, Needed: agent.Skill}
	if die <= agent.Skill {
		result.Success = true
		result.SuccessMargin = agent.Skill - die
	} else {
		result.MissMargin = die - agent.Skill
	}
	return result
}

// modFromCheck is the +1 / -1 / 0 modifier pattern shared by the bargain
// and appraisal sale modifiers.
func modFromCheck(result proficiency.CheckResult) int {
	switch {
	case result.Success:
		return 1
	case result.OddFailure():
		return -1
	default:
		return 0
	}
}

// QuoteSale resolves the sale price for cargo at a port.
//
// The SA roll is 3d6 plus demand, distance, bargain, appraisal, precious
// and no-skill modifiers, looked up in the Sale-Adjustment table, then
// scaled by the bargaining margin (five percent per point, capped at 25).
func QuoteSale(roller *dice.Roller, checker *proficiency.Checker, input SaleInput) SaleQuote {
	quote := SaleQuote{}

	// Demand: a fresh 3d6, moved by the trade skill (+4 on success, -4 on
	// an odd failure), then the table, the port size, and the agent's
	// presence.
	demandRoll := roller.RollN(3, 6)
	trade := checkOrAgent(roller, checker, input.Agent, proficiency.SkillTrade)
	if trade.Attempted {
		if trade.Success {
			demandRoll += 4
		} else if trade.OddFailure() {
			demandRoll -= 4
		}
	}
	quote.DemandMod = demandModifierForRoll(demandRoll) + input.PortSize.MerchantModifier()
	if input.Agent != nil {
		quote.DemandMod += AgentDemandPenalty
	}

	// Distance: a 1d6 category, overridden to Extraordinary past 500 miles.
	distanceRoll := roller.Die(6)
	switch {
	case input.DistanceMiles > 500:
		quote.DistanceCategory = trading.DistanceExtraordinary
	case distanceRoll <= 2:
		quote.DistanceCategory = trading.DistanceShort
	case distanceRoll <= 5:
		quote.DistanceCategory = trading.DistanceMedium
	default:
		quote.DistanceCategory = trading.DistanceLong
	}
	quote.DistanceMod = quote.DistanceCategory.Bonus()

	bargain := checkOrAgent(roller, checker, input.Agent, proficiency.SkillBargaining)
	appraisal := checkOrAgent(roller, checker, input.Agent, proficiency.SkillAppraisal)
	quote.BargainMod = modFromCheck(bargain)
	quote.AppraisalMod = modFromCheck(appraisal)

	if input.Category.Class == world.CargoPrecious && roller.Chance(preciousBonusChancePercent) {
		quote.PreciousBonus = 4
	}

	// A captain with none of the three trade skills sells at a discount.
	if input.Agent == nil &&
		!checker.Captain.HasSkill(proficiency.SkillBargaining) &&
		!checker.Captain.HasSkill(proficiency.SkillAppraisal) &&
		!checker.Captain.HasSkill(proficiency.SkillTrade) {
		quote.NoSkillPenalty = -2
	}

	quote.SARoll = roller.RollN(3, 6) + quote.DemandMod + quote.DistanceMod +
		quote.BargainMod + quote.AppraisalMod + quote.PreciousBonus + quote.NoSkillPenalty
	quote.Percent = trading.SaleAdjustmentPercent(quote.SARoll)

	if bargain.Success {
		bonus := 5 * bargain.SuccessMargin
		if bonus > 25 {
			bonus = 25
		}
		quote.MultiplierPct = bonus
	}

	price := input.Category.BaseValue * quote.Percent / 100
	price = price * (100 + quote.MultiplierPct) / 100
	if price < 1 {
		price = 1
	}
	quote.PricePerLoad = price
	quote.Total = price * input.Loads
	return quote
}

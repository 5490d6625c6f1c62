package voyage

import (
	"context"

	"github.com/brinevale/voyager-go/internal/domain/market"
	"github.com/brinevale/voyager-go/internal/domain/port"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/trading"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// AutoDecisions is the policy used by unattended voyages: repairs when the
// hull needs them and the treasury covers them, hiring when too much of the
// muster is missing, and the trading strategy's own recommendations.
type AutoDecisions struct{}

var _ voyage.DecisionAdapter = AutoDecisions{}

// ChooseRepair takes the professional yard when damage has reached ten
// percent and it is affordable, falls back to self-repair when the officers
// can do the work, and otherwise declines.
func (AutoDecisions) ChooseRepair(_ context.Context, state *voyage.State, options voyage.RepairOptions) (port.RepairMethod, bool, error) {
	if !state.Config.AutoRepair {
		return "", false, nil
	}
	damagePercent := state.Ship.Hull.DamagePercent()
	if port.DecideRepair(damagePercent, state.Treasury, options.Professional.Cost) {
		return port.RepairProfessional, true, nil
	}
	if damagePercent >= 10 && options.SelfAvailable {
		return port.RepairSelf, true, nil
	}
	return "", false, nil
}

// ApproveHire fills the muster when more than a fifth of it is missing.
func (AutoDecisions) ApproveHire(_ context.Context, _ *voyage.State, shortfall, required int) (bool, error) {
	return port.ShouldAutoHire(shortfall, required), nil
}

// ApproveBuy takes every load the strategy allows.
func (AutoDecisions) ApproveBuy(_ context.Context, _ *voyage.State, decision trading.BuyDecision, _ market.PurchaseQuote) (int, error) {
	if !decision.Accept {
		return 0, nil
	}
	return decision.MaxLoads, nil
}

// ApproveSell follows the strategy's recommendation.
func (AutoDecisions) ApproveSell(_ context.Context, _ *voyage.State, decision trading.SellDecision) (bool, error) {
	return decision.Sell, nil
}

// EngageAgent contracts a middleman only when the captain brings none of the
// trading skills to the table; a skilled captain keeps the fee.
func (AutoDecisions) EngageAgent(_ context.Context, state *voyage.State) (bool, error) {
	captain := &state.Config.Captain
	return !captain.HasSkill(proficiency.SkillBargaining) &&
		!captain.HasSkill(proficiency.SkillAppraisal) &&
		!captain.HasSkill(proficiency.SkillTrade), nil
}

// AcceptCharter always takes a charter; refusing one gains nothing.
func (AutoDecisions) AcceptCharter(_ context.Context, _ *voyage.State, _ port.Charter) (bool, error) {
	return true, nil
}

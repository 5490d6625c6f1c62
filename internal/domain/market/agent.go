// Package market resolves everything that happens at a port's trade table:
// merchant availability, offered cargo, purchase and sale pricing, customs
// and the smuggling branch, perishability, agent substitution, and how the
// proceeds split between owner and crew.
package market

import "github.com/brinevale/voyager-go/internal/domain/dice"

// Agent is a contracted port middleman who substitutes the captain's
// trading skills for a fee. Agents cannot smuggle and depress demand by one
// on sales.
type Agent struct {
	Skill      int `json:"skill"`       // flat skill target, 11..21
	FeePercent int `json:"fee_percent"` // 7..25
}

// AgentDemandPenalty applies whenever an agent handles a sale.
const AgentDemandPenalty = -1

// RollAgent hires a port agent: skill 10 + 1d8 + 1d4 - 1, fee 2d10 + 5.
func RollAgent(roller *dice.Roller) Agent {
	return Agent{
		Skill:      10 + roller.Die(8) + roller.Die(4) - 1,
		FeePercent: roller.RollN(2, 10) + 5,
	}
}

// Fee computes the agent's cut of a sale total.
func (a Agent) Fee(saleTotal int) int {
	return saleTotal * a.FeePercent / 100
}

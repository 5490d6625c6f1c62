package voyage

import (
	"context"

	"github.com/brinevale/voyager-go/internal/domain/market"
	"github.com/brinevale/voyager-go/internal/domain/port"
	"github.com/brinevale/voyager-go/internal/domain/trading"
	"github.com/brinevale/voyager-go/internal/domain/weather"
)

// WeatherAdapter supplies a day's weather. The engine never generates
// weather itself; a fallback adapter covers hosts without one.
type WeatherAdapter interface {
	GenerateDayWeather(ctx context.Context) (weather.Record, error)
}

// StateStore persists voyage state keyed by voyage id. Save is called only
// at day and port-phase boundaries; partial in-day state is never stored.
type StateStore interface {
	Save(ctx context.Context, state *State) error
	Load(ctx context.Context, id string) (*State, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]string, error)
}

// RepairOptions is what a port's yard can do for a damaged ship.
type RepairOptions struct {
	Professional  port.RepairQuote `json:"professional"`
	Drydock       port.RepairQuote `json:"drydock"`
	SelfAvailable bool             `json:"self_available"`
}

// DecisionAdapter answers the choices a voyage poses. Manual and
// interactive modes route these to a human; automated voyages use a policy
// implementation that needs no interaction.
type DecisionAdapter interface {
	// ChooseRepair picks a repair method, or declines repairs entirely.
	ChooseRepair(ctx context.Context, state *State, options RepairOptions) (port.RepairMethod, bool, error)

	// ApproveHire says whether to sign on the missing hands.
	ApproveHire(ctx context.Context, state *State, shortfall, required int) (bool, error)

	// ApproveBuy returns how many loads to take from an offer, zero to pass.
	ApproveBuy(ctx context.Context, state *State, decision trading.BuyDecision, quote market.PurchaseQuote) (int, error)

	// ApproveSell confirms or overrides a sell recommendation.
	ApproveSell(ctx context.Context, state *State, decision trading.SellDecision) (bool, error)

	// EngageAgent says whether to contract a port agent to handle the sale
	// in the captain's stead.
	EngageAgent(ctx context.Context, state *State) (bool, error)

	// AcceptCharter says whether to take an offered charter run.
	AcceptCharter(ctx context.Context, state *State, charter port.Charter) (bool, error)
}

// Notifier posts short progress summaries to whoever is watching.
type Notifier interface {
	Notify(ctx context.Context, voyageID, message string) error
}

// Journal receives the final report of a completed voyage. Failed voyages
// emit a failure summary through the Notifier instead.
type Journal interface {
	Emit(ctx context.Context, report *Report) error
}

package commands

import (
	"context"
	"fmt"

	"github.com/brinevale/voyager-go/internal/application/common"
	appvoyage "github.com/brinevale/voyager-go/internal/application/voyage"
	"github.com/brinevale/voyager-go/internal/domain/shared"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// SimulateDayCommand advances a voyage one day. Manual-mode voyages are
// stepped exclusively through this command.
type SimulateDayCommand struct {
	VoyageID string
}

// SimulateDayResponse reports the state after the day.
type SimulateDayResponse struct {
	Status         voyage.Status
	Date           shared.Date
	RemainingMiles int
	Treasury       int
	Finished       bool
}

// SimulateDayHandler handles single-day advancement.
type SimulateDayHandler struct {
	engine *appvoyage.Engine
}

// NewSimulateDayHandler creates a new handler.
func NewSimulateDayHandler(engine *appvoyage.Engine) *SimulateDayHandler {
	return &SimulateDayHandler{engine: engine}
}

// Handle executes the command.
func (h *SimulateDayHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SimulateDayCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	state, err := h.engine.SimulateDay(ctx, cmd.VoyageID)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate day: %w", err)
	}
	return &SimulateDayResponse{
		Status:         state.Status,
		Date:           state.CurrentDate,
		RemainingMiles: state.RemainingMiles,
		Treasury:       state.Treasury,
		Finished:       state.Finished(),
	}, nil
}

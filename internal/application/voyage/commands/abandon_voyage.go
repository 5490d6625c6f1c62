package commands

import (
	"context"
	"fmt"

	"github.com/brinevale/voyager-go/internal/application/common"
	appvoyage "github.com/brinevale/voyager-go/internal/application/voyage"
)

// AbandonVoyageCommand drops a voyage between days. Abandonment is final;
// the state is removed from the store.
type AbandonVoyageCommand struct {
	VoyageID string
}

// AbandonVoyageResponse confirms removal.
type AbandonVoyageResponse struct {
	VoyageID string
}

// AbandonVoyageHandler handles voyage abandonment.
type AbandonVoyageHandler struct {
	engine *appvoyage.Engine
}

// NewAbandonVoyageHandler creates a new handler.
func NewAbandonVoyageHandler(engine *appvoyage.Engine) *AbandonVoyageHandler {
	return &AbandonVoyageHandler{engine: engine}
}

// Handle executes the command.
func (h *AbandonVoyageHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AbandonVoyageCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := h.engine.Abandon(ctx, cmd.VoyageID); err != nil {
		return nil, fmt.Errorf("failed to abandon voyage: %w", err)
	}
	return &AbandonVoyageResponse{VoyageID: cmd.VoyageID}, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/brinevale/voyager-go/internal/application/common"
	appvoyage "github.com/brinevale/voyager-go/internal/application/voyage"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// StartVoyageCommand requests a new voyage from a validated configuration.
type StartVoyageCommand struct {
	Config voyage.Config
}

// StartVoyageResponse reports the created voyage.
type StartVoyageResponse struct {
	VoyageID string
	Status   voyage.Status
	Treasury int
}

// StartVoyageHandler handles voyage creation.
type StartVoyageHandler struct {
	engine *appvoyage.Engine
}

// NewStartVoyageHandler creates a new handler.
func NewStartVoyageHandler(engine *appvoyage.Engine) *StartVoyageHandler {
	return &StartVoyageHandler{engine: engine}
}

// Handle executes the command.
func (h *StartVoyageHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartVoyageCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	state, err := h.engine.Start(ctx, cmd.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to start voyage: %w", err)
	}
	return &StartVoyageResponse{
		VoyageID: state.ID,
		Status:   state.Status,
		Treasury: state.Treasury,
	}, nil
}

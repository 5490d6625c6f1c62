package queries

import (
	"context"
	"fmt"

	"github.com/brinevale/voyager-go/internal/application/common"
	"github.com/brinevale/voyager-go/internal/domain/shared"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// GetStatusQuery asks for a voyage's position and finances.
type GetStatusQuery struct {
	VoyageID string
}

// StatusResponse is the live snapshot of a voyage.
type StatusResponse struct {
	VoyageID       string
	Status         voyage.Status
	Ship           string
	Date           shared.Date
	LegIndex       int
	RemainingMiles int
	LastPortID     string
	Hull           int
	HullMax        int
	Crew           int
	Treasury       int
	CargoLoads     int
	CargoClass     string
	EventCount     int
}

// GetStatusHandler handles status queries.
type GetStatusHandler struct {
	store voyage.StateStore
}

// NewGetStatusHandler creates a new handler.
func NewGetStatusHandler(store voyage.StateStore) *GetStatusHandler {
	return &GetStatusHandler{store: store}
}

// Handle executes the query.
func (h *GetStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	state, err := h.store.Load(ctx, query.VoyageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load voyage: %w", err)
	}

	response := &StatusResponse{
		VoyageID:       state.ID,
		Status:         state.Status,
		Date:           state.CurrentDate,
		LegIndex:       state.LegIndex,
		RemainingMiles: state.RemainingMiles,
		LastPortID:     state.LastPortID,
		Treasury:       state.Treasury,
		CargoLoads:     state.Cargo.Loads,
		EventCount:     len(state.Events),
	}
	if state.Ship != nil {
		response.Ship = state.Ship.Name
		response.Hull = state.Ship.Hull.Value
		response.HullMax = state.Ship.Hull.Max
		response.Crew = state.Ship.Crew.Total()
	}
	if state.Cargo.Holding() {
		response.CargoClass = string(state.Cargo.Category.Class)
	}
	return response, nil
}

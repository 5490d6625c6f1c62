package queries

import (
	"context"
	"fmt"

	"github.com/brinevale/voyager-go/internal/application/common"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// GetLedgerQuery asks for a voyage's full ledger.
type GetLedgerQuery struct {
	VoyageID string
}

// GetLedgerResponse carries the entries plus the running totals.
type GetLedgerResponse struct {
	Entries      []voyage.LedgerEntry
	Balance      int
	RevenueTotal int
	ExpenseTotal int
}

// GetLedgerHandler handles ledger queries.
type GetLedgerHandler struct {
	store voyage.StateStore
}

// NewGetLedgerHandler creates a new handler.
func NewGetLedgerHandler(store voyage.StateStore) *GetLedgerHandler {
	return &GetLedgerHandler{store: store}
}

// Handle executes the query.
func (h *GetLedgerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetLedgerQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	state, err := h.store.Load(ctx, query.VoyageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load voyage: %w", err)
	}
	return &GetLedgerResponse{
		Entries:      state.Ledger.Entries,
		Balance:      state.Ledger.Balance(),
		RevenueTotal: state.Ledger.RevenueTotal(),
		ExpenseTotal: state.Ledger.ExpenseTotal(),
	}, nil
}

package queries

import (
	"context"
	"fmt"

	"github.com/brinevale/voyager-go/internal/application/common"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// GetReportQuery asks for the structured report of a voyage. The report can
// be built at any point; before the final port it reflects progress so far.
type GetReportQuery struct {
	VoyageID string
}

// GetReportResponse wraps the report.
type GetReportResponse struct {
	Report voyage.Report
}

// GetReportHandler handles report queries.
type GetReportHandler struct {
	store voyage.StateStore
}

// NewGetReportHandler creates a new handler.
func NewGetReportHandler(store voyage.StateStore) *GetReportHandler {
	return &GetReportHandler{store: store}
}

// Handle executes the query.
func (h *GetReportHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetReportQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	state, err := h.store.Load(ctx, query.VoyageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load voyage: %w", err)
	}
	return &GetReportResponse{Report: voyage.BuildReport(state)}, nil
}

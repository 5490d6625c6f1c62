package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/brinevale/voyager-go/internal/domain/shared"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// GormVoyageRepository implements voyage.StateStore using GORM.
type GormVoyageRepository struct {
	db *gorm.DB
}

var _ voyage.StateStore = (*GormVoyageRepository)(nil)

// NewGormVoyageRepository creates a new GORM voyage repository.
func NewGormVoyageRepository(db *gorm.DB) *GormVoyageRepository {
	return &GormVoyageRepository{db: db}
}

// Save upserts the voyage document and rewrites its ledger mirror rows in
// one transaction.
func (r *GormVoyageRepository) Save(ctx context.Context, state *voyage.State) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid voyage: %w", err)
	}

	document, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal voyage state: %w", err)
	}
	model := VoyageStateModel{
		ID:        state.ID,
		Status:    string(state.Status),
		State:     string(document),
		UpdatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to save voyage: %w", err)
		}
		if err := tx.Where("voyage_id = ?", state.ID).Delete(&VoyageLedgerEntryModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear ledger mirror: %w", err)
		}
		if len(state.Ledger.Entries) == 0 {
			return nil
		}
		rows := make([]VoyageLedgerEntryModel, 0, len(state.Ledger.Entries))
		for i, entry := range state.Ledger.Entries {
			opening := 0
			if entry.Opening {
				opening = 1
			}
			rows = append(rows, VoyageLedgerEntryModel{
				VoyageID:    state.ID,
				Seq:         i,
				Date:        entry.Date.String(),
				Description: entry.Description,
				Income:      entry.Income,
				Expense:     entry.Expense,
				Balance:     entry.Balance,
				Opening:     opening,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to write ledger mirror: %w", err)
		}
		return nil
	})
}

// Load retrieves a voyage by id and revalidates its invariants.
func (r *GormVoyageRepository) Load(ctx context.Context, id string) (*voyage.State, error) {
	var model VoyageStateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("voyage", id)
		}
		return nil, fmt.Errorf("failed to load voyage: %w", result.Error)
	}

	var state voyage.State
	if err := json.Unmarshal([]byte(model.State), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal voyage %s: %w", id, err)
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("stored voyage failed validation: %w", err)
	}
	return &state, nil
}

// Delete removes a voyage and its ledger mirror.
func (r *GormVoyageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("voyage_id = ?", id).Delete(&VoyageLedgerEntryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ledger mirror: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&VoyageStateModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete voyage: %w", err)
		}
		return nil
	})
}

// ListActive returns ids of voyages that have not reached a terminal state.
func (r *GormVoyageRepository) ListActive(ctx context.Context) ([]string, error) {
	var ids []string
	result := r.db.WithContext(ctx).
		Model(&VoyageStateModel{}).
		Where("status NOT IN ?", []string{string(voyage.StatusFinal), string(voyage.StatusFailed)}).
		Order("updated_at").
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list active voyages: %w", result.Error)
	}
	return ids, nil
}

// LedgerRows returns the mirror rows for one voyage in entry order, for
// reporting queries that do not need the whole aggregate.
func (r *GormVoyageRepository) LedgerRows(ctx context.Context, id string) ([]VoyageLedgerEntryModel, error) {
	var rows []VoyageLedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("voyage_id = ?", id).
		Order("seq").
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load ledger rows: %w", result.Error)
	}
	return rows, nil
}

package persistence

import "time"

// VoyageStateModel represents the voyage_states table. The full aggregate is
// stored as one JSON document; status is mirrored into its own column so the
// active list never deserializes finished voyages.
type VoyageStateModel struct {
	ID        string    `gorm:"column:id;primaryKey;not null"`
	Status    string    `gorm:"column:status;not null;index"`
	State     string    `gorm:"column:state;type:text;not null"` // JSON document
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (VoyageStateModel) TableName() string {
	return "voyage_states"
}

// VoyageLedgerEntryModel represents the voyage_ledger_entries table: a
// queryable mirror of each voyage's ledger, rewritten on every save. The
// JSON document in voyage_states stays authoritative.
type VoyageLedgerEntryModel struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	VoyageID    string `gorm:"column:voyage_id;not null;index"`
	Seq         int    `gorm:"column:seq;not null"`
	Date        string `gorm:"column:date;not null"`
	Description string `gorm:"column:description;not null"`
	Income      int    `gorm:"column:income;not null"`
	Expense     int    `gorm:"column:expense;not null"`
	Balance     int    `gorm:"column:balance;not null"`
	Opening     int    `gorm:"column:opening;not null;default:0"` // 0 or 1 (SQLite compatible)
}

func (VoyageLedgerEntryModel) TableName() string {
	return "voyage_ledger_entries"
}

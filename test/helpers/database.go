package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/brinevale/voyager-go/internal/infrastructure/database"
)

// NewTestDB returns a migrated in-memory SQLite store, closed when the test
// finishes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close(db)
	})
	return db
}

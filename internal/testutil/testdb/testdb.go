package testdb

import (
	"path/filepath"
	"testing"

	"github.com/P3chys/comments-seed/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a migrated sqlite database in a per-test temp dir.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(sqlite.Open(dbPath), "silent")
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

package testdb

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"herdbook/database"
)

// Open returns an isolated in-memory database with the full schema. The
// connection pool is pinned to one connection so every query sees the same
// sqlite memory instance.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// OpenSeeded also populates the lookup tables (stations, farms, lines).
func OpenSeeded(t *testing.T) *gorm.DB {
	t.Helper()
	db := Open(t)
	if err := database.SeedLookups(db); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return db
}

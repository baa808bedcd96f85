package database_test

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"herdbook/database"
	"herdbook/entities"
)

func open(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeedLookups(t *testing.T) {
	db := open(t)
	require.NoError(t, database.SeedLookups(db))

	var stations []entities.AiStation
	require.NoError(t, db.Find(&stations).Error)
	assert.Len(t, stations, 2)

	var farms []entities.Farm
	require.NoError(t, db.Find(&farms).Error)
	require.Len(t, farms, 3)
	assert.Equal(t, "GGP", farms[0].Abbreviation)

	var lines []entities.Line
	require.NoError(t, db.Order("code").Find(&lines).Error)
	require.Len(t, lines, 4)
	codes := make([]string, 0, len(lines))
	for _, l := range lines {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"LLLL", "MMMM", "NNNN", "ZZZZ"}, codes)
}

func TestSeedLookups_Idempotent(t *testing.T) {
	db := open(t)
	require.NoError(t, database.SeedLookups(db))
	require.NoError(t, database.SeedLookups(db))

	var count int64
	require.NoError(t, db.Model(&entities.Farm{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

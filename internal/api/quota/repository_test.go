package quota

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"linestats-api-server/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a fresh in-memory database per connection, so keep a single one
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Line{}, &models.QuotaResult{}, &models.SpeedTestResult{}))
	return db
}

func seedLines(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&[]models.Line{
		{ID: 1, LineNumber: "555", Name: "Home"},
		{ID: 2, LineNumber: "556", Name: "Office"},
		{ID: 3, LineNumber: "557", Name: "Cottage"},
	}).Error)
}

func TestGetQuotaResultsOrderedByTime(t *testing.T) {
	db := setupDB(t)
	seedLines(t, db)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.QuotaResult{
		{ID: 1, ProcessID: "p1", LineID: 1, DataUsed: 100, Balance: 50, DateTime: now.Add(-time.Hour)},
		{ID: 2, ProcessID: "p2", LineID: 1, DataUsed: 120, Balance: 40, DateTime: now.Add(-3 * time.Hour)},
		{ID: 3, ProcessID: "p3", LineID: 2, DataUsed: 10, Balance: 90, DateTime: now},
	}).Error)

	repo := NewQuotaRepository(db)
	results, err := repo.GetQuotaResults(context.Background(), 1, time.Time{}, time.Time{})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].ID)
	assert.Equal(t, int64(1), results[1].ID)
	assert.True(t, results[0].DateTime.Before(results[1].DateTime))
}

func TestGetQuotaResultsUnknownLineIsEmpty(t *testing.T) {
	db := setupDB(t)
	seedLines(t, db)

	repo := NewQuotaRepository(db)
	results, err := repo.GetQuotaResults(context.Background(), 999, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestGetQuotaResultsTimeRange(t *testing.T) {
	db := setupDB(t)
	seedLines(t, db)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.QuotaResult{
		{ID: 1, ProcessID: "p1", LineID: 1, DateTime: now.AddDate(0, 0, -10)},
		{ID: 2, ProcessID: "p2", LineID: 1, DateTime: now.AddDate(0, 0, -2)},
		{ID: 3, ProcessID: "p3", LineID: 1, DateTime: now},
	}).Error)

	repo := NewQuotaRepository(db)
	results, err := repo.GetQuotaResults(context.Background(), 1, now.AddDate(0, 0, -5), now.Add(-time.Hour))
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, int64(2), results[0].ID)
}

func TestTotalDataUsedPerLineOmitsLinesWithoutSnapshots(t *testing.T) {
	db := setupDB(t)
	seedLines(t, db)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.QuotaResult{
		{ID: 1, ProcessID: "p1", LineID: 1, DataUsed: 100, DateTime: now.AddDate(0, 0, -2)},
		{ID: 2, ProcessID: "p2", LineID: 1, DataUsed: 50, DateTime: now.AddDate(0, 0, -1)},
		{ID: 3, ProcessID: "p3", LineID: 2, DataUsed: 30, DateTime: now},
	}).Error)

	repo := NewQuotaRepository(db)
	rows, err := repo.TotalDataUsedPerLine(context.Background())
	require.NoError(t, err)

	// line 3 has no snapshots and must not appear
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].LineID)
	assert.Equal(t, "Home", rows[0].Name)
	assert.Equal(t, 150.0, rows[0].TotalDataUsed)
	assert.Equal(t, int64(2), rows[1].LineID)
	assert.Equal(t, 30.0, rows[1].TotalDataUsed)
}

func TestCountPerRenewalCostOrderedByCost(t *testing.T) {
	db := setupDB(t)
	seedLines(t, db)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.QuotaResult{
		{ID: 1, ProcessID: "p1", LineID: 1, RenewalCost: 75, DateTime: now},
		{ID: 2, ProcessID: "p2", LineID: 1, RenewalCost: 50, DateTime: now},
		{ID: 3, ProcessID: "p3", LineID: 2, RenewalCost: 50, DateTime: now},
	}).Error)

	repo := NewQuotaRepository(db)
	rows, err := repo.CountPerRenewalCost(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 50.0, rows[0].RenewalCost)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Equal(t, 75.0, rows[1].RenewalCost)
	assert.Equal(t, int64(1), rows[1].Count)
}

func TestRemainingBalanceUsesLatestSnapshot(t *testing.T) {
	db := setupDB(t)
	seedLines(t, db)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.QuotaResult{
		{ID: 1, ProcessID: "p1", LineID: 1, Balance: 100, DateTime: now.AddDate(0, 0, -2)},
		{ID: 2, ProcessID: "p2", LineID: 1, Balance: 80, DateTime: now.AddDate(0, 0, -1)},
		{ID: 3, ProcessID: "p3", LineID: 2, Balance: 25, DateTime: now.AddDate(0, 0, -3)},
	}).Error)

	repo := NewQuotaRepository(db)
	rows, err := repo.RemainingBalanceByLine(context.Background())
	require.NoError(t, err)

	// not a sum: the latest snapshot per line
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].LineID)
	assert.Equal(t, "555", rows[0].LineNumber)
	assert.Equal(t, 80.0, rows[0].Balance)
	assert.Equal(t, int64(2), rows[1].LineID)
	assert.Equal(t, 25.0, rows[1].Balance)
}

package report

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
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Line{}, &models.QuotaResult{}, &models.SpeedTestResult{}))
	return db
}

func TestGetSummary(t *testing.T) {
	db := setupDB(t)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.Line{
		{ID: 1, LineNumber: "555", Name: "Home"},
		{ID: 2, LineNumber: "556", Name: "Office"},
	}).Error)
	require.NoError(t, db.Create(&[]models.QuotaResult{
		{ID: 1, ProcessID: "p1", LineID: 1, DataUsed: 100, DateTime: now},
		{ID: 2, ProcessID: "p2", LineID: 2, DataUsed: 40, DateTime: now},
		{ID: 3, ProcessID: "p3", LineID: 2, DataUsed: 60, DateTime: now},
	}).Error)
	require.NoError(t, db.Create(&[]models.SpeedTestResult{
		{ID: 1, ProcessID: "p1", LineID: 1, Ping: 10, DateTime: now},
	}).Error)

	repo := NewReportRepository(db)
	summary, err := repo.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.LineCount)
	assert.Equal(t, int64(3), summary.QuotaSnapshots)
	assert.Equal(t, int64(1), summary.SpeedTestSnapshots)
	assert.Equal(t, 200.0, summary.TotalDataUsed)
}

func TestGetSummaryEmptyDatabase(t *testing.T) {
	db := setupDB(t)

	repo := NewReportRepository(db)
	summary, err := repo.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.LineCount)
	assert.Equal(t, 0.0, summary.TotalDataUsed)
}

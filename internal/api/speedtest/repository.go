package speedtest

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	commonerrors "linestats-api-server/internal/api/common/errors"
	"linestats-api-server/internal/database"
	"linestats-api-server/internal/models"
)

type speedTestRepository struct {
	db *gorm.DB

	// raw SQL rendered once with the dialect-quoted lines table
	averageSpeedsSQL string
	averagePingSQL   string
}

var _ SpeedTestRepository = (*speedTestRepository)(nil)

func NewSpeedTestRepository(db *gorm.DB) SpeedTestRepository {
	lines := database.Quote(db, "lines")
	return &speedTestRepository{
		db:               db,
		averageSpeedsSQL: fmt.Sprintf(averageSpeedsQuery, lines),
		averagePingSQL:   fmt.Sprintf(averagePingQuery, lines),
	}
}

// GetSpeedTestResults lists the speed-test snapshots of one line ordered by
// observation time. Zero-valued bounds leave the range open.
func (r *speedTestRepository) GetSpeedTestResults(ctx context.Context, lineID int64, start, end time.Time) ([]models.SpeedTestResult, error) {
	results := make([]models.SpeedTestResult, 0)

	db := r.db.WithContext(ctx).
		Where("line_id = ?", lineID).
		Order("date_time")
	if !start.IsZero() {
		db = db.Where("date_time >= ?", start)
	}
	if !end.IsZero() {
		db = db.Where("date_time <= ?", end)
	}
	if err := db.Find(&results).Error; err != nil {
		return nil, commonerrors.StorageErr("speed test result listing", err)
	}
	return results, nil
}

func (r *speedTestRepository) AverageSpeedsPerLine(ctx context.Context, since time.Time) ([]LineSpeedAverage, error) {
	rows := make([]LineSpeedAverage, 0)
	err := r.db.WithContext(ctx).Raw(r.averageSpeedsSQL, since).Scan(&rows).Error
	if err != nil {
		return nil, commonerrors.StorageErr("average speed aggregation", err)
	}
	return rows, nil
}

func (r *speedTestRepository) AveragePingPerLine(ctx context.Context, since time.Time) ([]LinePingAverage, error) {
	rows := make([]LinePingAverage, 0)
	err := r.db.WithContext(ctx).Raw(r.averagePingSQL, since).Scan(&rows).Error
	if err != nil {
		return nil, commonerrors.StorageErr("average ping aggregation", err)
	}
	return rows, nil
}

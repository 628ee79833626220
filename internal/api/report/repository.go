package report

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	commonerrors "linestats-api-server/internal/api/common/errors"
	"linestats-api-server/internal/models"
)

const totalDataUsedQuery = `SELECT COALESCE(SUM(data_used), 0) FROM quota_results`

type reportRepository struct {
	db *gorm.DB
}

var _ ReportRepository = (*reportRepository)(nil)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// GetSummary gathers the overview counters concurrently; each query runs on
// its own pooled connection.
func (r *reportRepository) GetSummary(ctx context.Context) (*Summary, error) {
	var summary Summary

	ctxDB := r.db.WithContext(ctx)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ctxDB.Model(&models.Line{}).Count(&summary.LineCount).Error
	})
	g.Go(func() error {
		return ctxDB.Model(&models.QuotaResult{}).Count(&summary.QuotaSnapshots).Error
	})
	g.Go(func() error {
		return ctxDB.Model(&models.SpeedTestResult{}).Count(&summary.SpeedTestSnapshots).Error
	})
	g.Go(func() error {
		return ctxDB.Raw(totalDataUsedQuery).Scan(&summary.TotalDataUsed).Error
	})
	if err := g.Wait(); err != nil {
		return nil, commonerrors.StorageErr("summary aggregation", err)
	}

	return &summary, nil
}

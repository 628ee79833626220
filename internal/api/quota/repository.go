package quota

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	commonerrors "linestats-api-server/internal/api/common/errors"
	"linestats-api-server/internal/database"
	"linestats-api-server/internal/models"
)

type quotaRepository struct {
	db *gorm.DB

	// raw SQL rendered once with the dialect-quoted lines table
	totalDataUsedSQL    string
	remainingBalanceSQL string
}

var _ QuotaRepository = (*quotaRepository)(nil)

func NewQuotaRepository(db *gorm.DB) QuotaRepository {
	lines := database.Quote(db, "lines")
	return &quotaRepository{
		db:                  db,
		totalDataUsedSQL:    fmt.Sprintf(totalDataUsedQuery, lines),
		remainingBalanceSQL: fmt.Sprintf(remainingBalanceQuery, lines),
	}
}

// GetQuotaResults lists the quota snapshots of one line ordered by
// observation time. Zero-valued bounds leave the range open.
func (r *quotaRepository) GetQuotaResults(ctx context.Context, lineID int64, start, end time.Time) ([]models.QuotaResult, error) {
	results := make([]models.QuotaResult, 0)

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
		return nil, commonerrors.StorageErr("quota result listing", err)
	}
	return results, nil
}

func (r *quotaRepository) TotalDataUsedPerLine(ctx context.Context) ([]LineDataUsed, error) {
	rows := make([]LineDataUsed, 0)
	err := r.db.WithContext(ctx).Raw(r.totalDataUsedSQL).Scan(&rows).Error
	if err != nil {
		return nil, commonerrors.StorageErr("total data used aggregation", err)
	}
	return rows, nil
}

func (r *quotaRepository) CountPerRenewalCost(ctx context.Context) ([]RenewalCostCount, error) {
	rows := make([]RenewalCostCount, 0)
	err := r.db.WithContext(ctx).Raw(countPerRenewalCostQuery).Scan(&rows).Error
	if err != nil {
		return nil, commonerrors.StorageErr("renewal cost count aggregation", err)
	}
	return rows, nil
}

func (r *quotaRepository) RemainingBalanceByLine(ctx context.Context) ([]LineBalance, error) {
	rows := make([]LineBalance, 0)
	err := r.db.WithContext(ctx).Raw(r.remainingBalanceSQL).Scan(&rows).Error
	if err != nil {
		return nil, commonerrors.StorageErr("remaining balance aggregation", err)
	}
	return rows, nil
}

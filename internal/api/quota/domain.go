package quota

import (
	"context"
	"time"

	"linestats-api-server/internal/api/common/query"
	"linestats-api-server/internal/models"
)

type QuotaRepository interface {
	GetQuotaResults(ctx context.Context, lineID int64, start, end time.Time) ([]models.QuotaResult, error)
	TotalDataUsedPerLine(ctx context.Context) ([]LineDataUsed, error)
	CountPerRenewalCost(ctx context.Context) ([]RenewalCostCount, error)
	RemainingBalanceByLine(ctx context.Context) ([]LineBalance, error)
}

type QuotaService interface {
	GetQuotaResults(q query.Query) ([]models.QuotaResult, error)
	TotalDataUsedPerLine() ([]LineDataUsed, error)
	CountPerRenewalCost() ([]RenewalCostCount, error)
	RemainingBalanceByLine() ([]LineBalance, error)
}

// LineDataUsed is the summed quota usage of one line. Lines without quota
// snapshots never appear; the inner join drops them.
type LineDataUsed struct {
	LineID        int64   `gorm:"column:line_id" json:"line_id"`
	LineNumber    string  `gorm:"column:line_number" json:"line_number"`
	Name          string  `gorm:"column:name" json:"name"`
	TotalDataUsed float64 `gorm:"column:total_data_used" json:"total_data_used"`
}

// RenewalCostCount is the number of quota snapshots recorded at one
// distinct renewal cost.
type RenewalCostCount struct {
	RenewalCost float64 `gorm:"column:renewal_cost" json:"renewal_cost"`
	Count       int64   `gorm:"column:count" json:"count"`
}

// LineBalance is the balance carried by the most recent quota snapshot of
// one line.
type LineBalance struct {
	LineID     int64   `gorm:"column:line_id" json:"line_id"`
	LineNumber string  `gorm:"column:line_number" json:"line_number"`
	Name       string  `gorm:"column:name" json:"name"`
	Balance    float64 `gorm:"column:balance" json:"balance"`
}

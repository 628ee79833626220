package report

import (
	"context"
)

type ReportRepository interface {
	GetSummary(ctx context.Context) (*Summary, error)
}

type ReportService interface {
	GetSummary() (*Summary, error)
}

// Summary is an overview of everything the reporting database holds.
type Summary struct {
	LineCount          int64   `json:"line_count"`
	QuotaSnapshots     int64   `json:"quota_snapshots"`
	SpeedTestSnapshots int64   `json:"speed_test_snapshots"`
	TotalDataUsed      float64 `json:"total_data_used"`
}

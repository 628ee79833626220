package speedtest

import (
	"context"
	"time"

	"linestats-api-server/internal/api/common/query"
	"linestats-api-server/internal/models"
)

type SpeedTestRepository interface {
	GetSpeedTestResults(ctx context.Context, lineID int64, start, end time.Time) ([]models.SpeedTestResult, error)
	AverageSpeedsPerLine(ctx context.Context, since time.Time) ([]LineSpeedAverage, error)
	AveragePingPerLine(ctx context.Context, since time.Time) ([]LinePingAverage, error)
}

type SpeedTestService interface {
	GetSpeedTestResults(q query.Query) ([]models.SpeedTestResult, error)
	AverageSpeedsPerLine(q query.Query) ([]LineSpeedAverage, error)
	AveragePingPerLine(q query.Query) ([]LinePingAverage, error)
}

// LineSpeedAverage is the mean upload/download speed of one line over the
// requested window. Lines with no tests in the window never appear;
// reporting them as zero would be misleading.
type LineSpeedAverage struct {
	LineID           int64   `gorm:"column:line_id" json:"line_id"`
	LineNumber       string  `gorm:"column:line_number" json:"line_number"`
	Name             string  `gorm:"column:name" json:"name"`
	AvgUploadSpeed   float64 `gorm:"column:avg_upload_speed" json:"avg_upload_speed"`
	AvgDownloadSpeed float64 `gorm:"column:avg_download_speed" json:"avg_download_speed"`
}

// LinePingAverage is the mean ping of one line over the requested window.
type LinePingAverage struct {
	LineID     int64   `gorm:"column:line_id" json:"line_id"`
	LineNumber string  `gorm:"column:line_number" json:"line_number"`
	Name       string  `gorm:"column:name" json:"name"`
	AvgPing    float64 `gorm:"column:avg_ping" json:"avg_ping"`
}

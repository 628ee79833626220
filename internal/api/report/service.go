package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"linestats-api-server/internal/cache"
)

const (
	summaryKey = "report:summary"
	// coarse counters tolerate more staleness than the per-line aggregates
	summaryTTL = time.Minute * 2
)

type reportService struct {
	cache      *cache.Cache
	repository ReportRepository
	logger     *zap.Logger
}

var _ ReportService = (*reportService)(nil)

func NewReportService(cache *cache.Cache, r ReportRepository, logger *zap.Logger) ReportService {
	return &reportService{
		cache:      cache,
		repository: r,
		logger:     logger,
	}
}

func (s *reportService) GetSummary() (*Summary, error) {
	if item, exist := s.cache.Get(summaryKey); exist {
		if summary, ok := item.(*Summary); ok {
			return summary, nil
		}
	}

	summary, err := s.repository.GetSummary(context.Background())
	if err != nil {
		return nil, err
	}
	s.logger.Debug("summary",
		zap.Int64("lines", summary.LineCount),
		zap.Int64("quota_snapshots", summary.QuotaSnapshots),
		zap.Int64("speed_test_snapshots", summary.SpeedTestSnapshots))

	s.cache.SetWithTTL(summaryKey, summary, summaryTTL)
	return summary, nil
}

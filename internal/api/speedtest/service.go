package speedtest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"linestats-api-server/internal/api/common/query"
	"linestats-api-server/internal/cache"
	"linestats-api-server/internal/models"
)

type speedTestService struct {
	cache      *cache.Cache
	repository SpeedTestRepository
	logger     *zap.Logger
}

var _ SpeedTestService = (*speedTestService)(nil)

func NewSpeedTestService(cache *cache.Cache, r SpeedTestRepository, logger *zap.Logger) SpeedTestService {
	return &speedTestService{
		cache:      cache,
		repository: r,
		logger:     logger,
	}
}

func (s *speedTestService) GetSpeedTestResults(q query.Query) ([]models.SpeedTestResult, error) {
	s.logger.Debug("get speed test results",
		zap.String("id", q.ID),
		zap.Int64("line_id", q.Line.ID),
		zap.Time("start_time", q.StartTime),
		zap.Time("end_time", q.EndTime))

	results, err := s.repository.GetSpeedTestResults(context.Background(), q.Line.ID, q.StartTime, q.EndTime)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("fetched speed test results", zap.Int("count", len(results)))
	return results, nil
}

func (s *speedTestService) AverageSpeedsPerLine(q query.Query) ([]LineSpeedAverage, error) {
	key := fmt.Sprintf("speedtest:avgSpeeds:%d", q.Days)
	if item, exist := s.cache.Get(key); exist {
		if rows, ok := item.([]LineSpeedAverage); ok {
			return rows, nil
		}
	}

	since := windowStart(q.Days)
	s.logger.Debug("average speeds per line", zap.Int("days", q.Days), zap.Time("since", since))

	rows, err := s.repository.AverageSpeedsPerLine(context.Background(), since)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, rows)
	return rows, nil
}

func (s *speedTestService) AveragePingPerLine(q query.Query) ([]LinePingAverage, error) {
	key := fmt.Sprintf("speedtest:avgPing:%d", q.Days)
	if item, exist := s.cache.Get(key); exist {
		if rows, ok := item.([]LinePingAverage); ok {
			return rows, nil
		}
	}

	since := windowStart(q.Days)
	s.logger.Debug("average ping per line", zap.Int("days", q.Days), zap.Time("since", since))

	rows, err := s.repository.AveragePingPerLine(context.Background(), since)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, rows)
	return rows, nil
}

func windowStart(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

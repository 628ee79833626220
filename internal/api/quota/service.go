package quota

import (
	"context"

	"go.uber.org/zap"

	"linestats-api-server/internal/api/common/query"
	"linestats-api-server/internal/cache"
	"linestats-api-server/internal/models"
)

const (
	totalDataUsedKey    = "quota:totalDataUsed"
	renewalCostCountKey = "quota:renewalCostCount"
	remainingBalanceKey = "quota:remainingBalance"
)

type quotaService struct {
	cache      *cache.Cache
	repository QuotaRepository
	logger     *zap.Logger
}

var _ QuotaService = (*quotaService)(nil)

func NewQuotaService(cache *cache.Cache, r QuotaRepository, logger *zap.Logger) QuotaService {
	return &quotaService{
		cache:      cache,
		repository: r,
		logger:     logger,
	}
}

func (s *quotaService) GetQuotaResults(q query.Query) ([]models.QuotaResult, error) {
	s.logger.Debug("get quota results",
		zap.String("id", q.ID),
		zap.Int64("line_id", q.Line.ID),
		zap.Time("start_time", q.StartTime),
		zap.Time("end_time", q.EndTime))

	results, err := s.repository.GetQuotaResults(context.Background(), q.Line.ID, q.StartTime, q.EndTime)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("fetched quota results", zap.Int("count", len(results)))
	return results, nil
}

func (s *quotaService) TotalDataUsedPerLine() ([]LineDataUsed, error) {
	if item, exist := s.cache.Get(totalDataUsedKey); exist {
		if rows, ok := item.([]LineDataUsed); ok {
			return rows, nil
		}
	}

	rows, err := s.repository.TotalDataUsedPerLine(context.Background())
	if err != nil {
		return nil, err
	}
	s.cache.Set(totalDataUsedKey, rows)
	return rows, nil
}

func (s *quotaService) CountPerRenewalCost() ([]RenewalCostCount, error) {
	if item, exist := s.cache.Get(renewalCostCountKey); exist {
		if rows, ok := item.([]RenewalCostCount); ok {
			return rows, nil
		}
	}

	rows, err := s.repository.CountPerRenewalCost(context.Background())
	if err != nil {
		return nil, err
	}
	s.cache.Set(renewalCostCountKey, rows)
	return rows, nil
}

func (s *quotaService) RemainingBalanceByLine() ([]LineBalance, error) {
	if item, exist := s.cache.Get(remainingBalanceKey); exist {
		if rows, ok := item.([]LineBalance); ok {
			return rows, nil
		}
	}

	rows, err := s.repository.RemainingBalanceByLine(context.Background())
	if err != nil {
		return nil, err
	}
	s.cache.Set(remainingBalanceKey, rows)
	return rows, nil
}

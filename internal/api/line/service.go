package line

import (
	"context"

	"go.uber.org/zap"

	"linestats-api-server/internal/api/common/query"
	"linestats-api-server/internal/models"
)

type lineService struct {
	repository LineRepository
	logger     *zap.Logger
}

var _ LineService = (*lineService)(nil)

func NewLineService(r LineRepository, logger *zap.Logger) LineService {
	return &lineService{
		repository: r,
		logger:     logger,
	}
}

func (s *lineService) GetLines(q query.Query) ([]models.Line, error) {
	s.logger.Debug("get lines",
		zap.String("id", q.ID),
		zap.Bool("all", q.Line.All),
		zap.Int64("line_id", q.Line.ID))

	lines, err := s.repository.GetLines(context.Background(), q.Line)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("fetched lines", zap.Int("count", len(lines)))
	return lines, nil
}

func (s *lineService) GetLine(id int64) (*models.Line, error) {
	s.logger.Debug("get line", zap.Int64("line_id", id))
	return s.repository.GetLine(context.Background(), id)
}

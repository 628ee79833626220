package line

import (
	"context"

	"linestats-api-server/internal/api/common/query"
	"linestats-api-server/internal/models"
)

type LineRepository interface {
	GetLines(ctx context.Context, filter query.LineFilter) ([]models.Line, error)
	GetLine(ctx context.Context, id int64) (*models.Line, error)
}

type LineService interface {
	GetLines(q query.Query) ([]models.Line, error)
	GetLine(id int64) (*models.Line, error)
}

package line

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	commonerrors "linestats-api-server/internal/api/common/errors"
	"linestats-api-server/internal/api/common/query"
	"linestats-api-server/internal/models"
)

type lineRepository struct {
	db *gorm.DB
}

var _ LineRepository = (*lineRepository)(nil)

func NewLineRepository(db *gorm.DB) LineRepository {
	return &lineRepository{
		db: db,
	}
}

// GetLines returns every line, or the single line named by the filter.
// An unknown id yields an empty slice, not an error.
func (r *lineRepository) GetLines(ctx context.Context, filter query.LineFilter) ([]models.Line, error) {
	lines := make([]models.Line, 0)

	db := r.db.WithContext(ctx).Order("id")
	if !filter.All {
		db = db.Where("id = ?", filter.ID)
	}
	if err := db.Find(&lines).Error; err != nil {
		return nil, commonerrors.StorageErr("line lookup", err)
	}
	return lines, nil
}

// GetLine is the single-entity lookup; unlike the list it reports an
// unknown id as NotFound so the handler can answer 404.
func (r *lineRepository) GetLine(ctx context.Context, id int64) (*models.Line, error) {
	lines, err := r.GetLines(ctx, query.LineByID(id))
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, commonerrors.NotFoundErr("line", strconv.FormatInt(id, 10))
	}
	return &lines[0], nil
}

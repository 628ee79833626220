package query

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	commonerrors "linestats-api-server/internal/api/common/errors"
	"linestats-api-server/internal/utils"
)

// DefaultDays is the averaging window applied when the client omits days.
const DefaultDays = 7

// parseQuery binds the raw query string before validation.
type parseQuery struct {
	LineID string `query:"line_id,omitempty" json:"-"`
	Days   string `query:"days,omitempty" json:"-"`
	Start  string `query:"start,omitempty" json:"-"`
	End    string `query:"end,omitempty" json:"-"`
}

// LineFilter selects either every line or one line by id.
type LineFilter struct {
	All bool
	ID  int64
}

func AllLines() LineFilter {
	return LineFilter{All: true}
}

func LineByID(id int64) LineFilter {
	return LineFilter{ID: id}
}

type Query struct {
	ID        string
	Line      LineFilter
	Days      int
	StartTime time.Time
	EndTime   time.Time
}

func (q parseQuery) ParseAndValidate(c *fiber.Ctx) (Query, error) {
	id, _ := c.Locals("requestid").(string)

	line := AllLines()
	if q.LineID != "" {
		lineID, err := strconv.ParseInt(q.LineID, 10, 64)
		if err != nil {
			return Query{}, commonerrors.ValidationErr("line_id", "must be an integer")
		}
		line = LineByID(lineID)
	}

	days := DefaultDays
	if q.Days != "" {
		d, err := strconv.Atoi(q.Days)
		if err != nil {
			return Query{}, commonerrors.ValidationErr("days", "must be an integer")
		}
		if d <= 0 {
			return Query{}, commonerrors.ValidationErr("days", "must be a positive integer")
		}
		days = d
	}

	startTime, endTime, err := utils.ParseTimeRange(q.Start, q.End)
	if err != nil {
		return Query{}, commonerrors.ValidationErr("start/end", err.Error())
	}
	if !startTime.IsZero() && !endTime.IsZero() && startTime.After(endTime) {
		return Query{}, commonerrors.ValidationErr("start/end", "the end time should be after the start time")
	}

	return Query{
		ID:        id,
		Line:      line,
		Days:      days,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

func ParseAndValidate(c *fiber.Ctx) (Query, error) {
	query := &parseQuery{}
	if err := c.QueryParser(query); err != nil {
		return Query{}, commonerrors.ValidationErr("query", err.Error())
	}
	return query.ParseAndValidate(c)
}

// RequireLine rejects queries that did not name a line.
func (q Query) RequireLine() error {
	if q.Line.All {
		return commonerrors.ValidationErr("line_id", "is required")
	}
	return nil
}

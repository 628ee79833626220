package line

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	commonerrors "linestats-api-server/internal/api/common/errors"
	"linestats-api-server/internal/api/common/query"
)

type LineHandler struct {
	ls     LineService
	logger *zap.Logger
}

func LineRouter(route fiber.Router, ls LineService, logger *zap.Logger) {
	handler := &LineHandler{
		ls:     ls,
		logger: logger,
	}

	route.Get("/lines", handler.getLines)
	route.Get("/lines/:line_id", handler.getLine)
}

// @Summary Get lines
// @Description Get every monitored line, or a single line filtered by line_id
// @Accept  json
// @Produce json
// @Param line_id query int false "the id of the line"
// @Success 200 {array} models.Line
// @Failure 400 {object} nil
// @Failure 500 {object} nil
// @Router /lines [get]
func (h *LineHandler) getLines(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return h.fail(c, err)
	}

	lines, err := h.ls.GetLines(query)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lines)
}

// @Summary Get one line
// @Description Get a single line by id; unknown ids answer 404
// @Accept  json
// @Produce json
// @Param line_id path int true "the id of the line"
// @Success 200 {object} models.Line
// @Failure 400 {object} nil
// @Failure 404 {object} nil
// @Failure 500 {object} nil
// @Router /lines/{line_id} [get]
func (h *LineHandler) getLine(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("line_id"), 10, 64)
	if err != nil {
		return h.fail(c, commonerrors.ValidationErr("line_id", "must be an integer"))
	}

	line, err := h.ls.GetLine(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(line)
}

func (h *LineHandler) fail(c *fiber.Ctx, err error) error {
	code := commonerrors.StatusCode(err)
	message := err.Error()
	if code == fiber.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		message = "internal error"
	}
	return c.Status(code).JSON(&fiber.Map{
		"status":  "fail",
		"message": message,
	})
}

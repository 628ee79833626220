package speedtest

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	commonerrors "linestats-api-server/internal/api/common/errors"
	"linestats-api-server/internal/api/common/query"
)

type SpeedTestHandler struct {
	ss     SpeedTestService
	logger *zap.Logger
}

func SpeedTestRouter(route fiber.Router, ss SpeedTestService, logger *zap.Logger) {
	handler := &SpeedTestHandler{
		ss:     ss,
		logger: logger,
	}

	route.Get("/speed-test-results", handler.getSpeedTestResults)
	route.Get("/average-speeds-per-line", handler.getAverageSpeedsPerLine)
	route.Get("/average-ping-per-line", handler.getAveragePingPerLine)
}

// @Summary Get speed-test snapshots of a line
// @Description List every speed-test snapshot recorded for the line, oldest first
// @Accept  json
// @Produce json
// @Param line_id query int    true  "the id of the line"
// @Param start   query string false "start time"
// @Param end     query string false "end time"
// @Success 200 {array} models.SpeedTestResult
// @Failure 400 {object} nil
// @Failure 500 {object} nil
// @Router /speed-test-results [get]
func (h *SpeedTestHandler) getSpeedTestResults(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return h.fail(c, err)
	}
	if err := query.RequireLine(); err != nil {
		return h.fail(c, err)
	}

	results, err := h.ss.GetSpeedTestResults(query)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(results)
}

// @Summary Get average speeds per line
// @Description Mean upload and download speed per line over the last days
// @Accept  json
// @Produce json
// @Param days query int false "window size in days (default 7)"
// @Success 200 {array} LineSpeedAverage
// @Failure 400 {object} nil
// @Failure 500 {object} nil
// @Router /average-speeds-per-line [get]
func (h *SpeedTestHandler) getAverageSpeedsPerLine(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return h.fail(c, err)
	}

	rows, err := h.ss.AverageSpeedsPerLine(query)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// @Summary Get average ping per line
// @Description Mean ping per line over the last days
// @Accept  json
// @Produce json
// @Param days query int false "window size in days (default 7)"
// @Success 200 {array} LinePingAverage
// @Failure 400 {object} nil
// @Failure 500 {object} nil
// @Router /average-ping-per-line [get]
func (h *SpeedTestHandler) getAveragePingPerLine(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return h.fail(c, err)
	}

	rows, err := h.ss.AveragePingPerLine(query)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

func (h *SpeedTestHandler) fail(c *fiber.Ctx, err error) error {
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

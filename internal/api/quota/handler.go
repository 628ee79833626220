package quota

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	commonerrors "linestats-api-server/internal/api/common/errors"
	"linestats-api-server/internal/api/common/query"
)

type QuotaHandler struct {
	qs     QuotaService
	logger *zap.Logger
}

func QuotaRouter(route fiber.Router, qs QuotaService, logger *zap.Logger) {
	handler := &QuotaHandler{
		qs:     qs,
		logger: logger,
	}

	route.Get("/quota-results", handler.getQuotaResults)
	route.Get("/total-dataused-per-line", handler.getTotalDataUsedPerLine)
	route.Get("/count-per-renewal-cost", handler.getCountPerRenewalCost)
	route.Get("/remaining-balance-by-line", handler.getRemainingBalanceByLine)
}

// @Summary Get quota snapshots of a line
// @Description List every quota snapshot recorded for the line, oldest first
// @Accept  json
// @Produce json
// @Param line_id query int    true  "the id of the line"
// @Param start   query string false "start time"
// @Param end     query string false "end time"
// @Success 200 {array} models.QuotaResult
// @Failure 400 {object} nil
// @Failure 500 {object} nil
// @Router /quota-results [get]
func (h *QuotaHandler) getQuotaResults(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return h.fail(c, err)
	}
	if err := query.RequireLine(); err != nil {
		return h.fail(c, err)
	}

	results, err := h.qs.GetQuotaResults(query)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(results)
}

// @Summary Get total data used per line
// @Description Sum of data_used over all quota snapshots, grouped by line
// @Accept  json
// @Produce json
// @Success 200 {array} LineDataUsed
// @Failure 500 {object} nil
// @Router /total-dataused-per-line [get]
func (h *QuotaHandler) getTotalDataUsedPerLine(c *fiber.Ctx) error {
	rows, err := h.qs.TotalDataUsedPerLine()
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// @Summary Get snapshot count per renewal cost
// @Description Number of quota snapshots per distinct renewal cost, cheapest first
// @Accept  json
// @Produce json
// @Success 200 {array} RenewalCostCount
// @Failure 500 {object} nil
// @Router /count-per-renewal-cost [get]
func (h *QuotaHandler) getCountPerRenewalCost(c *fiber.Ctx) error {
	rows, err := h.qs.CountPerRenewalCost()
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// @Summary Get remaining balance by line
// @Description Balance from the most recent quota snapshot of each line
// @Accept  json
// @Produce json
// @Success 200 {array} LineBalance
// @Failure 500 {object} nil
// @Router /remaining-balance-by-line [get]
func (h *QuotaHandler) getRemainingBalanceByLine(c *fiber.Ctx) error {
	rows, err := h.qs.RemainingBalanceByLine()
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

func (h *QuotaHandler) fail(c *fiber.Ctx, err error) error {
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

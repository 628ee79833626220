package report

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	commonerrors "linestats-api-server/internal/api/common/errors"
)

type ReportHandler struct {
	rs     ReportService
	logger *zap.Logger
}

func ReportRouter(route fiber.Router, rs ReportService, logger *zap.Logger) {
	handler := &ReportHandler{
		rs:     rs,
		logger: logger,
	}

	route.Get("/summary", handler.getSummary)
}

// @Summary Get database overview
// @Description Line and snapshot counts plus total data used
// @Accept  json
// @Produce json
// @Success 200 {object} Summary
// @Failure 500 {object} nil
// @Router /summary [get]
func (h *ReportHandler) getSummary(c *fiber.Ctx) error {
	summary, err := h.rs.GetSummary()
	if err != nil {
		code := commonerrors.StatusCode(err)
		h.logger.Error("request failed", zap.Error(err))
		return c.Status(code).JSON(&fiber.Map{
			"status":  "fail",
			"message": "internal error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}

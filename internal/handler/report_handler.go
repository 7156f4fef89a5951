package handler

import (
	"time"

	"go-restaurant-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetSalesReport returns the aggregated sales view.
// Query params: range (today, 7d, 1m; default 7d)
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	rangeParam := c.Query("range", "7d")
	now := time.Now()
	endDate := now
	var startDate time.Time

	switch rangeParam {
	case "today":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "7d":
		startDate = now.AddDate(0, 0, -7)
	case "1m":
		startDate = now.AddDate(0, -1, 0)
	default:
		startDate = now.AddDate(0, 0, -7)
	}

	report, err := h.service.GetSalesReport(startDate, endDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

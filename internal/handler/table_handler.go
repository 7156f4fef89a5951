package handler

import (
	"errors"
	"strconv"

	"go-restaurant-ws/internal/model"
	"go-restaurant-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TableHandler struct {
	service service.TableService
}

func NewTableHandler(s service.TableService) *TableHandler {
	return &TableHandler{service: s}
}

func (h *TableHandler) GetTables(c *fiber.Ctx) error {
	tables, err := h.service.ListTables()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(tables)
}

func (h *TableHandler) SetStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table ID"})
	}

	var req struct {
		Status model.TableStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	table, err := h.service.SetStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Table status updated", "data": table})
}

func (h *TableHandler) UpdateOccupancy(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid table ID"})
	}

	var req service.OccupancyUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	table, err := h.service.UpdateOccupancy(id, req)
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Table occupancy updated", "data": table})
}

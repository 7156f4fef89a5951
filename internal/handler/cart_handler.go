package handler

import (
	"errors"

	"go-restaurant-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) OpenCart(c *fiber.Ctx) error {
	cart := h.service.Open()
	return c.Status(201).JSON(cart)
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"cart": cart, "total": cart.Total()})
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cart, err := h.service.AddItem(c.Params("id"), req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) || errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"cart": cart, "total": cart.Total()})
}

func (h *CartHandler) ChangeQuantity(c *fiber.Ctx) error {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	cart, err := h.service.ChangeQuantity(c.Params("id"), c.Params("productId"), req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"cart": cart, "total": cart.Total()})
}

func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req struct {
		TableNumber int `json:"table_number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Checkout(c.Params("id"), req.TableNumber)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if order == nil {
		// empty cart, nothing to finalize
		return c.JSON(fiber.Map{"message": "Cart is empty"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

// SearchCatalog serves the POS product grid.
func (h *CartHandler) SearchCatalog(c *fiber.Ctx) error {
	products, err := h.service.SearchCatalog(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

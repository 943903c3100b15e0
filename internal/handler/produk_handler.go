package handler

import (
	"go-kasir-toko/internal/model"
	"go-kasir-toko/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProdukHandler struct {
	service service.KatalogService
}

func NewProdukHandler(s service.KatalogService) *ProdukHandler {
	return &ProdukHandler{service: s}
}

func (h *ProdukHandler) GetProduk(c *fiber.Ctx) error {
	produk, err := h.service.GetAllProduk()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(produk)
}

// GetProdukByID mengembalikan satu produk, dipakai form edit di frontend.
func (h *ProdukHandler) GetProdukByID(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid produk ID"})
	}

	produk, err := h.service.GetProdukByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Produk not found"})
	}
	return c.JSON(produk)
}

func (h *ProdukHandler) CreateProduk(c *fiber.Ctx) error {
	var produk model.Produk
	if err := c.BodyParser(&produk); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduk(&produk); err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Produk created", "data": produk})
}

func (h *ProdukHandler) UpdateProduk(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid produk ID"})
	}

	var produk model.Produk
	if err := c.BodyParser(&produk); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduk(id, &produk)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Produk updated", "data": updated})
}

func (h *ProdukHandler) DeleteProduk(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid produk ID"})
	}

	if err := h.service.DeleteProduk(id); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Produk deleted"})
}

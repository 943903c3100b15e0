package handler

import (
	"go-kasir-toko/internal/service"

	"github.com/gofiber/fiber/v2"
)

type KasirHandler struct {
	service service.KasirService
}

func NewKasirHandler(s service.KasirService) *KasirHandler {
	return &KasirHandler{service: s}
}

// GetProdukKasir untuk layar kasir: hanya produk yang masih ada stoknya.
func (h *KasirHandler) GetProdukKasir(c *fiber.Ctx) error {
	produk, err := h.service.GetProdukTersedia()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(produk)
}

func (h *KasirHandler) ProsesTransaksi(c *fiber.Ctx) error {
	var req service.ProsesTransaksiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.ProsesTransaksi(&req)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(201).JSON(result)
}

func (h *KasirHandler) GetTransaksi(c *fiber.Ctx) error {
	transaksi, err := h.service.GetAllTransaksi()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transaksi)
}

func (h *KasirHandler) GetDetailTransaksi(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaksi ID"})
	}

	transaksi, err := h.service.GetTransaksiByID(id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(transaksi)
}

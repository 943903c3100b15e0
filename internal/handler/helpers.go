package handler

import (
	"errors"

	"go-kasir-toko/internal/service"
	"go-kasir-toko/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper untuk parse UUID dari string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// mapServiceError menerjemahkan error dari layer service ke respons HTTP.
// Hanya error validasi dan aturan bisnis yang jadi 400 dengan pesannya;
// error storage atau error tak dikenal lain jadi 500 generik supaya detail
// internal tidak bocor ke client.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProdukNotFound),
		errors.Is(err, service.ErrTransaksiNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, validator.ErrValidation),
		errors.Is(err, service.ErrKodeProdukDuplikat),
		errors.Is(err, service.ErrStokTidakCukup),
		errors.Is(err, service.ErrPembayaranKurang),
		errors.Is(err, service.ErrTotalTidakSesuai):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/middleware"
	"gondola-rental/internal/service/gondola"
)

type GondolaHandler struct {
	gondolaService gondola.Service
}

func NewGondolaHandler(gondolaService gondola.Service) *GondolaHandler {
	return &GondolaHandler{gondolaService: gondolaService}
}

func (h *GondolaHandler) Certificates(c *fiber.Ctx) error {
	gondolaID, err := uuid.Parse(c.Params("gondolaId"))
	if err != nil {
		return middleware.BadRequest("Invalid gondola ID")
	}

	threshold := c.QueryInt("threshold", domain.DefaultExpiryThresholdDays)
	if threshold <= 0 {
		return middleware.BadRequest("threshold must be a positive number of days")
	}

	report, err := h.gondolaService.Certificates(c.Context(), gondolaID, threshold)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

package handlers

import (
	"context"
	"time"

	"creovibe/internal/infrastructure/db"
	"creovibe/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	db db.Pinger
}

func NewHealthHandler(pinger db.Pinger) *HealthHandler {
	return &HealthHandler{db: pinger}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": constants.StatusFailed})
	}
	return c.JSON(fiber.Map{"status": constants.StatusOK})
}

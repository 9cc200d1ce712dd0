package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	ping func() error
}

// NewHealthHandler creates a HealthHandler. ping may be nil when there is no
// external database.
func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// RegisterRoutes registers GET /health.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth always answers 200; the database field carries the detail.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	database := "up"
	if h.ping != nil {
		if err := h.ping(); err != nil {
			database = "down"
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"database": database,
	})
}

package handler

import (
	"context"
	"time"

	"vaga-hub/internal/database"
	"vaga-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type cachePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness of the API dependencies. A dead cache is
// reported but does not fail the check, since the API degrades to
// Postgres-only mode without it.
type HealthHandler struct {
	db    database.DB
	cache cachePinger
}

func NewHealthHandler(db database.DB, cache cachePinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.Map{
		"database": "up",
		"cache":    "up",
	}

	if h.db == nil || h.db.Ping(ctx) != nil {
		status["database"] = "down"
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageError, status)
	}

	if h.cache == nil || h.cache.Ping(ctx) != nil {
		status["cache"] = "down"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}

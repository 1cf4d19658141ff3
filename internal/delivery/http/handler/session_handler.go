package handler

import (
	"vaga-hub/internal/delivery/http/middleware"
	"vaga-hub/internal/pkg/response"
	"vaga-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	uc usecase.SessionUsecase
}

func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/counters", h.HandleCounters)
}

func (h *SessionHandler) HandleCounters(c fiber.Ctx) error {
	clientID := clientIDFrom(c)
	if clientID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing client id", nil, nil)
	}

	counters, err := h.uc.GetCounters(c.Context(), clientID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, counters)
}

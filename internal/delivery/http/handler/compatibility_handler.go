package handler

import (
	"vaga-hub/internal/delivery/http/middleware"
	"vaga-hub/internal/pkg/response"
	"vaga-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompatibilityHandler struct {
	uc usecase.CompatibilityUsecase
}

func NewCompatibilityHandler(uc usecase.CompatibilityUsecase) *CompatibilityHandler {
	return &CompatibilityHandler{uc: uc}
}

func (h *CompatibilityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/compatibility", h.HandleCompatibility)
}

func (h *CompatibilityHandler) HandleCompatibility(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.uc.Compatibility(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

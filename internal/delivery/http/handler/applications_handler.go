package handler

import (
	"errors"

	"vaga-hub/internal/delivery/http/middleware"
	"vaga-hub/internal/pkg/response"
	"vaga-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

type applicationRequest struct {
	JobID uuid.UUID `json:"job_id"`
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleRegister)
}

func (h *ApplicationsHandler) HandleRegister(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req applicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.RegisterApplication(c.Context(), userID, req.JobID)
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadyApplied) {
			return middleware.NewAppError(fiber.StatusConflict, "Already applied", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, app)
}

func (h *ApplicationsHandler) HandleList(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListApplications(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

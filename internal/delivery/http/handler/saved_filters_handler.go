package handler

import (
	"errors"

	"vaga-hub/internal/delivery/http/middleware"
	"vaga-hub/internal/domain/listing"
	"vaga-hub/internal/pkg/response"
	"vaga-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SavedFiltersHandler struct {
	uc usecase.SavedFilterUsecase
}

type savedFilterRequest struct {
	Name     string           `json:"name"`
	Criteria listing.Criteria `json:"criteria"`
}

func NewSavedFiltersHandler(uc usecase.SavedFilterUsecase) *SavedFiltersHandler {
	return &SavedFiltersHandler{uc: uc}
}

func (h *SavedFiltersHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Delete("/:id", h.HandleDelete)
}

func (h *SavedFiltersHandler) HandleCreate(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req savedFilterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	f, err := h.uc.CreateFilter(c.Context(), userID, req.Name, req.Criteria)
	if err != nil {
		if errors.Is(err, usecase.ErrSavedFilterExists) {
			return middleware.NewAppError(fiber.StatusConflict, "Filter already exists", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, f)
}

func (h *SavedFiltersHandler) HandleDelete(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	filterID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFilter(c.Context(), userID, filterID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SavedFiltersHandler) HandleList(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	filters, err := h.uc.ListFilters(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, filters)
}

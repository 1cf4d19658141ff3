package handler

import (
	"errors"

	"vaga-hub/internal/delivery/http/middleware"
	"vaga-hub/internal/pkg/response"
	"vaga-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SavedJobsHandler struct {
	uc usecase.SavedJobUsecase
}

type saveJobRequest struct {
	JobID    uuid.UUID  `json:"job_id"`
	FolderID *uuid.UUID `json:"folder_id"`
}

type moveToFolderRequest struct {
	FolderID *uuid.UUID `json:"folder_id"`
}

type createFolderRequest struct {
	Name string `json:"name"`
}

func NewSavedJobsHandler(uc usecase.SavedJobUsecase) *SavedJobsHandler {
	return &SavedJobsHandler{uc: uc}
}

func (h *SavedJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleSave)
	r.Delete("/:jobId", h.HandleUnsave)
	r.Patch("/:jobId/folder", h.HandleMoveToFolder)
}

func (h *SavedJobsHandler) RegisterFolderRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListFolders)
	r.Post("/", h.HandleCreateFolder)
	r.Delete("/:id", h.HandleDeleteFolder)
}

func (h *SavedJobsHandler) HandleSave(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SaveJob(c.Context(), userID, req.JobID, req.FolderID); err != nil {
		if errors.Is(err, usecase.ErrJobAlreadySaved) {
			return middleware.NewAppError(fiber.StatusConflict, "Job already saved", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}

func (h *SavedJobsHandler) HandleUnsave(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseUUIDParam(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.uc.UnsaveJob(c.Context(), userID, jobID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SavedJobsHandler) HandleList(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListSavedJobs(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SavedJobsHandler) HandleMoveToFolder(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseUUIDParam(c, "jobId")
	if err != nil {
		return err
	}

	var req moveToFolderRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.MoveToFolder(c.Context(), userID, jobID, req.FolderID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SavedJobsHandler) HandleCreateFolder(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createFolderRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	folder, err := h.uc.CreateFolder(c.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrFolderExists) {
			return middleware.NewAppError(fiber.StatusConflict, "Folder already exists", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, folder)
}

func (h *SavedJobsHandler) HandleDeleteFolder(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFolder(c.Context(), userID, folderID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SavedJobsHandler) HandleListFolders(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	folders, err := h.uc.ListFolders(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, folders)
}

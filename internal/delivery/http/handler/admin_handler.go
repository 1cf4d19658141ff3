package handler

import (
	"vaga-hub/internal/delivery/http/dto"
	"vaga-hub/internal/delivery/http/middleware"
	"vaga-hub/internal/domain/job"
	"vaga-hub/internal/pkg/response"
	"vaga-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AdminHandler struct {
	uc usecase.JobAdminUsecase
}

func NewAdminHandler(uc usecase.JobAdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs", h.HandleCreateJob)
	r.Put("/jobs/:id", h.HandleUpdateJob)
	r.Delete("/jobs/:id", h.HandleDeleteJob)
	r.Post("/jobs/import", h.HandleBulkImport)

	r.Get("/reports", h.HandleListReports)
	r.Patch("/reports/:id/resolve", h.HandleResolveReport)
}

func (h *AdminHandler) HandleCreateJob(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateJob(c.Context(), req.ToJob(uuid.Nil))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromJob(created))
}

func (h *AdminHandler) HandleUpdateJob(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateJob(c.Context(), req.ToJob(id))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(updated))
}

func (h *AdminHandler) HandleDeleteJob(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteJob(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AdminHandler) HandleBulkImport(c fiber.Ctx) error {
	var reqs []dto.JobRequest
	if err := c.Bind().Body(&reqs); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobs := make([]job.Job, 0, len(reqs))
	for _, r := range reqs {
		jobs = append(jobs, r.ToJob(uuid.Nil))
	}

	written, err := h.uc.BulkImport(c.Context(), jobs)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]int{"imported": written})
}

func (h *AdminHandler) HandleListReports(c fiber.Ctx) error {
	reports, err := h.uc.ListReports(c.Context(), c.Query("status"))
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.FromReport(r))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AdminHandler) HandleResolveReport(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.ResolveReport(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

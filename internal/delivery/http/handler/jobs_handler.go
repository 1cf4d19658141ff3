package handler

import (
	"errors"
	"strings"

	"vaga-hub/internal/delivery/http/dto"
	"vaga-hub/internal/delivery/http/middleware"
	"vaga-hub/internal/domain/listing"
	"vaga-hub/internal/pkg/response"
	"vaga-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	list     usecase.JobListUsecase
	jobs     usecase.JobUsecase
	sessions usecase.SessionUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, jobs usecase.JobUsecase, sessions usecase.SessionUsecase) *JobsHandler {
	return &JobsHandler{list: list, jobs: jobs, sessions: sessions}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
	r.Get("/:id", h.HandleGetJob)
	r.Post("/:id/share", h.HandleShare)
	r.Post("/:id/report", h.HandleReport)
}

func criteriaFromQuery(c fiber.Ctx) (listing.Criteria, error) {
	salaryMin, err := parseQueryInt64(c, "salary_min")
	if err != nil {
		return listing.Criteria{}, err
	}
	salaryMax, err := parseQueryInt64(c, "salary_max")
	if err != nil {
		return listing.Criteria{}, err
	}

	return listing.Criteria{
		Search:       c.Query("search"),
		Location:     c.Query("location"),
		Experience:   c.Query("experience"),
		ContractType: c.Query("contract_type"),
		SalaryMin:    salaryMin,
		SalaryMax:    salaryMax,
		Tags:         splitCSVQuery(c.Query("tags")),
		DatePosted:   c.Query("date_posted"),
		Country:      c.Query("country"),
		CountryCode:  c.Query("country_code"),
		Company:      c.Query("company"),
		Benefits:     splitCSVQuery(c.Query("benefits")),
	}, nil
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	perPage, err := parseQueryIntStrict(c, "per_page", listing.DefaultPageSize)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	sortBy := listing.SortOption(c.Query("sort", string(listing.SortRecent)))

	// A request with a search term counts against the anonymous daily
	// limit. Browsing without one never does.
	if strings.TrimSpace(criteria.Search) != "" && h.sessions != nil {
		if clientID := clientIDFrom(c); clientID != "" {
			_, authenticated := userIDFromCtx(c)
			if _, err := h.sessions.RecordSearch(c.Context(), clientID, authenticated); err != nil {
				if errors.Is(err, usecase.ErrSearchLimitReached) {
					return middleware.NewAppError(fiber.StatusTooManyRequests, "Limite diário de buscas atingido. Crie uma conta para continuar.", nil, err)
				}
				return mapUsecaseError(err)
			}
		}
	}

	res, err := h.list.ListJobs(c.Context(), usecase.JobListParams{
		Criteria: criteria,
		Sort:     sortBy,
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.jobs.GetJob(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	if h.sessions != nil {
		if clientID := clientIDFrom(c); clientID != "" {
			_, _ = h.sessions.RecordView(c.Context(), clientID)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobsHandler) HandleShare(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.jobs.TrackShare(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobsHandler) HandleReport(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ReportRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	email := req.UserEmail
	if email == "" {
		email = emailFromCtx(c)
	}

	rep, err := h.jobs.ReportJob(c.Context(), usecase.ReportInput{
		JobID:     id,
		Reason:    req.Reason,
		Comments:  req.Comments,
		UserEmail: email,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromReport(rep))
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vaga-hub/internal/domain/job"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

const (
	EventJobCreated = "job_created"
	EventJobUpdated = "job_updated"
	EventJobDeleted = "job_deleted"
)

// EventPublisher pushes listing changes to connected feed clients. A nil
// publisher is silently skipped.
type EventPublisher interface {
	Publish(event string, payload any)
}

type JobAdminUsecase interface {
	CreateJob(ctx context.Context, j job.Job) (job.Job, error)
	UpdateJob(ctx context.Context, j job.Job) (job.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
	BulkImport(ctx context.Context, jobs []job.Job) (int, error)

	ListReports(ctx context.Context, status string) ([]job.Report, error)
	ResolveReport(ctx context.Context, id uuid.UUID) error
}

type JobAdmin struct {
	jobs    repository.JobRepository
	reports repository.JobReportRepository
	cache   SearchCache
	events  EventPublisher
	logger  *log.Logger
}

func NewJobAdminUsecase(jobs repository.JobRepository, reports repository.JobReportRepository, cache SearchCache, events EventPublisher, logger *log.Logger) *JobAdmin {
	return &JobAdmin{jobs: jobs, reports: reports, cache: cache, events: events, logger: logger}
}

func (u *JobAdmin) CreateJob(ctx context.Context, j job.Job) (job.Job, error) {
	j, err := normalizeJob(j)
	if err != nil {
		return job.Job{}, err
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateListings(ctx)
	u.publish(EventJobCreated, toJobSummary(j))
	return j, nil
}

func (u *JobAdmin) UpdateJob(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		return job.Job{}, ErrInvalidInput
	}
	j, err := normalizeJob(j)
	if err != nil {
		return job.Job{}, err
	}
	if err := u.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateListings(ctx)
	u.publish(EventJobUpdated, toJobSummary(j))
	return j, nil
}

func (u *JobAdmin) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.invalidateListings(ctx)
	u.publish(EventJobDeleted, map[string]string{"id": id.String()})
	return nil
}

// BulkImport upserts a batch of postings, typically from a JSON dump. Rows
// keep their engagement counters when they already exist.
func (u *JobAdmin) BulkImport(ctx context.Context, jobs []job.Job) (int, error) {
	if len(jobs) == 0 {
		return 0, ErrInvalidInput
	}

	normalized := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		n, err := normalizeJob(j)
		if err != nil {
			return 0, err
		}
		normalized = append(normalized, n)
	}

	written, err := u.jobs.BulkUpsert(ctx, normalized)
	if err != nil {
		return written, ErrInternal
	}

	u.invalidateListings(ctx)
	if u.logger != nil {
		u.logger.Printf("[Admin] Bulk import wrote %d jobs", written)
	}
	return written, nil
}

func (u *JobAdmin) ListReports(ctx context.Context, status string) ([]job.Report, error) {
	switch status {
	case "", job.ReportStatusPending, job.ReportStatusResolved:
	default:
		return nil, ErrInvalidInput
	}
	reports, err := u.reports.List(ctx, status)
	if err != nil {
		return nil, ErrInternal
	}
	return reports, nil
}

func (u *JobAdmin) ResolveReport(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	err := u.reports.UpdateStatus(ctx, id, job.ReportStatusResolved)
	if errors.Is(err, repository.ErrReportNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

func normalizeJob(j job.Job) (job.Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	if j.Title == "" || j.Company == "" {
		return job.Job{}, ErrInvalidInput
	}
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Posted.IsZero() {
		j.Posted = time.Now().UTC()
	}
	return j, nil
}

func (u *JobAdmin) invalidateListings(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, ListingsCachePattern); err != nil && u.logger != nil {
		u.logger.Printf("[Admin] listing cache invalidation failed: %v", err)
	}
	if err := u.cache.DeleteByPattern(ctx, RecommendationsCachePattern); err != nil && u.logger != nil {
		u.logger.Printf("[Admin] recommendation cache invalidation failed: %v", err)
	}
}

func (u *JobAdmin) publish(event string, payload any) {
	if u.events == nil {
		return
	}
	u.events.Publish(event, payload)
}

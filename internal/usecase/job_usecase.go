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

type ReportInput struct {
	JobID     uuid.UUID
	Reason    string
	Comments  string
	UserEmail string
}

type JobUsecase interface {
	GetJob(ctx context.Context, id uuid.UUID) (job.Job, error)
	TrackShare(ctx context.Context, id uuid.UUID) error
	ReportJob(ctx context.Context, in ReportInput) (job.Report, error)
}

type Jobs struct {
	jobs    repository.JobRepository
	reports repository.JobReportRepository
	logger  *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, reports repository.JobReportRepository, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, reports: reports, logger: logger}
}

// GetJob returns the posting and bumps its view counter. A failed bump is
// logged and swallowed; the detail page still renders.
func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (job.Job, error) {
	if id == uuid.Nil {
		return job.Job{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	if err := u.jobs.IncrementCounter(ctx, id, repository.CounterView); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] view counter bump failed for %s: %v", id, err)
		}
	} else {
		j.ViewCount++
	}
	return j, nil
}

func (u *Jobs) TrackShare(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	err := u.jobs.IncrementCounter(ctx, id, repository.CounterShare)
	if errors.Is(err, repository.ErrJobNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Jobs) ReportJob(ctx context.Context, in ReportInput) (job.Report, error) {
	reason := strings.TrimSpace(in.Reason)
	email := strings.TrimSpace(in.UserEmail)
	if in.JobID == uuid.Nil || reason == "" || email == "" {
		return job.Report{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Report{}, ErrNotFound
		}
		return job.Report{}, ErrInternal
	}

	rep := job.Report{
		ID:         uuid.New(),
		JobID:      j.ID,
		JobTitle:   j.Title,
		JobURL:     j.ApplicationURL,
		Reason:     reason,
		Comments:   strings.TrimSpace(in.Comments),
		UserEmail:  email,
		Status:     job.ReportStatusPending,
		ReportedAt: time.Now().UTC(),
	}
	if err := u.reports.Create(ctx, rep); err != nil {
		return job.Report{}, ErrInternal
	}
	return rep, nil
}

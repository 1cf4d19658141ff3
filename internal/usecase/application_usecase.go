package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"vaga-hub/internal/domain/activity"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

var ErrAlreadyApplied = errors.New("already applied to this job")

type ApplicationItem struct {
	AppliedAt time.Time  `json:"applied_at"`
	Job       JobSummary `json:"job"`
}

type ApplicationUsecase interface {
	RegisterApplication(ctx context.Context, userID, jobID uuid.UUID) (activity.Application, error)
	ListApplications(ctx context.Context, userID uuid.UUID) ([]ApplicationItem, error)
}

type Applications struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	logger *log.Logger
}

func NewApplicationUsecase(apps repository.ApplicationRepository, jobs repository.JobRepository, logger *log.Logger) *Applications {
	return &Applications{apps: apps, jobs: jobs, logger: logger}
}

// RegisterApplication records that the user followed a job's application
// link. The actual application happens on the employer's site; this only
// tracks it.
func (u *Applications) RegisterApplication(ctx context.Context, userID, jobID uuid.UUID) (activity.Application, error) {
	if userID == uuid.Nil {
		return activity.Application{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return activity.Application{}, ErrInvalidInput
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return activity.Application{}, ErrNotFound
		}
		return activity.Application{}, ErrInternal
	}

	a := activity.Application{
		ID:        uuid.New(),
		UserID:    userID,
		JobID:     jobID,
		AppliedAt: time.Now().UTC(),
	}
	err := u.apps.Create(ctx, a)
	if errors.Is(err, repository.ErrAlreadyApplied) {
		return activity.Application{}, ErrAlreadyApplied
	}
	if err != nil {
		return activity.Application{}, ErrInternal
	}

	if err := u.jobs.IncrementCounter(ctx, jobID, repository.CounterApply); err != nil && u.logger != nil {
		u.logger.Printf("[Applications] apply counter bump failed for %s: %v", jobID, err)
	}
	return a, nil
}

func (u *Applications) ListApplications(ctx context.Context, userID uuid.UUID) ([]ApplicationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	apps, err := u.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ApplicationItem, 0, len(apps))
	for _, a := range apps {
		j, err := u.jobs.GetByID(ctx, a.JobID)
		if errors.Is(err, repository.ErrJobNotFound) {
			continue
		}
		if err != nil {
			return nil, ErrInternal
		}
		out = append(out, ApplicationItem{AppliedAt: a.AppliedAt, Job: toJobSummary(j)})
	}
	return out, nil
}

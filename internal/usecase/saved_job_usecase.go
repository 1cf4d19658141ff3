package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vaga-hub/internal/domain/activity"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrJobAlreadySaved = errors.New("job already saved")
	ErrFolderExists    = errors.New("folder already exists")
)

// SavedJobItem pairs a saved entry with the posting it points at.
type SavedJobItem struct {
	SavedAt  time.Time  `json:"saved_at"`
	FolderID *uuid.UUID `json:"folder_id"`
	Job      JobSummary `json:"job"`
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, userID, jobID uuid.UUID, folderID *uuid.UUID) error
	UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error
	ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]SavedJobItem, error)
	MoveToFolder(ctx context.Context, userID, jobID uuid.UUID, folderID *uuid.UUID) error

	CreateFolder(ctx context.Context, userID uuid.UUID, name string) (activity.Folder, error)
	DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error
	ListFolders(ctx context.Context, userID uuid.UUID) ([]activity.Folder, error)
}

type SavedJobs struct {
	saved  repository.SavedJobRepository
	jobs   repository.JobRepository
	logger *log.Logger
}

func NewSavedJobUsecase(saved repository.SavedJobRepository, jobs repository.JobRepository, logger *log.Logger) *SavedJobs {
	return &SavedJobs{saved: saved, jobs: jobs, logger: logger}
}

func (u *SavedJobs) SaveJob(ctx context.Context, userID, jobID uuid.UUID, folderID *uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	if folderID != nil {
		if err := u.ensureFolderOwned(ctx, userID, *folderID); err != nil {
			return err
		}
	}

	err := u.saved.Save(ctx, activity.SavedJob{
		ID:       uuid.New(),
		UserID:   userID,
		JobID:    jobID,
		FolderID: folderID,
		SavedAt:  time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrAlreadySaved) {
		return ErrJobAlreadySaved
	}
	if err != nil {
		return ErrInternal
	}

	if err := u.jobs.IncrementCounter(ctx, jobID, repository.CounterSave); err != nil && u.logger != nil {
		u.logger.Printf("[SavedJobs] save counter bump failed for %s: %v", jobID, err)
	}
	return nil
}

func (u *SavedJobs) UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}
	err := u.saved.Unsave(ctx, userID, jobID)
	if errors.Is(err, repository.ErrSavedJobNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

// ListSavedJobs drops entries whose posting has since been removed instead
// of failing the whole listing.
func (u *SavedJobs) ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]SavedJobItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	saved, err := u.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SavedJobItem, 0, len(saved))
	for _, s := range saved {
		j, err := u.jobs.GetByID(ctx, s.JobID)
		if errors.Is(err, repository.ErrJobNotFound) {
			continue
		}
		if err != nil {
			return nil, ErrInternal
		}
		out = append(out, SavedJobItem{
			SavedAt:  s.SavedAt,
			FolderID: s.FolderID,
			Job:      toJobSummary(j),
		})
	}
	return out, nil
}

func (u *SavedJobs) MoveToFolder(ctx context.Context, userID, jobID uuid.UUID, folderID *uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}
	if folderID != nil {
		if err := u.ensureFolderOwned(ctx, userID, *folderID); err != nil {
			return err
		}
	}
	err := u.saved.SetFolder(ctx, userID, jobID, folderID)
	if errors.Is(err, repository.ErrSavedJobNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

func (u *SavedJobs) CreateFolder(ctx context.Context, userID uuid.UUID, name string) (activity.Folder, error) {
	if userID == uuid.Nil {
		return activity.Folder{}, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return activity.Folder{}, ErrInvalidInput
	}

	f := activity.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	err := u.saved.CreateFolder(ctx, f)
	if errors.Is(err, repository.ErrFolderExists) {
		return activity.Folder{}, ErrFolderExists
	}
	if err != nil {
		return activity.Folder{}, ErrInternal
	}
	return f, nil
}

func (u *SavedJobs) DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if folderID == uuid.Nil {
		return ErrInvalidInput
	}
	err := u.saved.DeleteFolder(ctx, userID, folderID)
	if errors.Is(err, repository.ErrFolderNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

func (u *SavedJobs) ListFolders(ctx context.Context, userID uuid.UUID) ([]activity.Folder, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	folders, err := u.saved.ListFolders(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return folders, nil
}

func (u *SavedJobs) ensureFolderOwned(ctx context.Context, userID, folderID uuid.UUID) error {
	folders, err := u.saved.ListFolders(ctx, userID)
	if err != nil {
		return ErrInternal
	}
	for _, f := range folders {
		if f.ID == folderID {
			return nil
		}
	}
	return ErrNotFound
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vaga-hub/internal/domain/job"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

func savedJobsFixture() (*mockSavedJobRepo, *mockJobRepo, uuid.UUID, uuid.UUID) {
	userID := uuid.New()
	jobID := uuid.New()
	jobs := &mockJobRepo{jobs: []job.Job{{
		ID:      jobID,
		Title:   "Desenvolvedor Backend",
		Company: "TechCorp",
		Posted:  time.Now().UTC(),
	}}}
	return &mockSavedJobRepo{}, jobs, userID, jobID
}

func TestSavedJobs_SaveBumpsCounter(t *testing.T) {
	saved, jobs, userID, jobID := savedJobsFixture()
	uc := NewSavedJobUsecase(saved, jobs, nil)

	if err := uc.SaveJob(context.Background(), userID, jobID, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if jobs.incremented[repository.CounterSave] != 1 {
		t.Fatalf("expected save counter bump")
	}
}

func TestSavedJobs_DuplicateSave(t *testing.T) {
	saved, jobs, userID, jobID := savedJobsFixture()
	uc := NewSavedJobUsecase(saved, jobs, nil)
	ctx := context.Background()

	if err := uc.SaveJob(ctx, userID, jobID, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.SaveJob(ctx, userID, jobID, nil); !errors.Is(err, ErrJobAlreadySaved) {
		t.Fatalf("expected ErrJobAlreadySaved, got %v", err)
	}
}

func TestSavedJobs_SaveUnknownJob(t *testing.T) {
	saved, jobs, userID, _ := savedJobsFixture()
	uc := NewSavedJobUsecase(saved, jobs, nil)

	if err := uc.SaveJob(context.Background(), userID, uuid.New(), nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSavedJobs_FolderOwnership(t *testing.T) {
	saved, jobs, userID, jobID := savedJobsFixture()
	uc := NewSavedJobUsecase(saved, jobs, nil)
	ctx := context.Background()

	folder, err := uc.CreateFolder(ctx, userID, "Favoritas")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Saving into another user's folder must fail.
	otherFolder, err := uc.CreateFolder(ctx, uuid.New(), "Outras")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.SaveJob(ctx, userID, jobID, &otherFolder.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign folder, got %v", err)
	}

	if err := uc.SaveJob(ctx, userID, jobID, &folder.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	items, err := uc.ListSavedJobs(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].FolderID == nil || *items[0].FolderID != folder.ID {
		t.Fatalf("unexpected saved items: %+v", items)
	}
}

func TestSavedJobs_DuplicateFolderName(t *testing.T) {
	saved, jobs, userID, _ := savedJobsFixture()
	uc := NewSavedJobUsecase(saved, jobs, nil)
	ctx := context.Background()

	if _, err := uc.CreateFolder(ctx, userID, "Favoritas"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.CreateFolder(ctx, userID, "Favoritas"); !errors.Is(err, ErrFolderExists) {
		t.Fatalf("expected ErrFolderExists, got %v", err)
	}
}

func TestSavedJobs_ListSkipsRemovedJobs(t *testing.T) {
	saved, jobs, userID, jobID := savedJobsFixture()
	uc := NewSavedJobUsecase(saved, jobs, nil)
	ctx := context.Background()

	if err := uc.SaveJob(ctx, userID, jobID, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	jobs.jobs = nil

	items, err := uc.ListSavedJobs(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected removed job to be skipped, got %d items", len(items))
	}
}

func TestSavedJobs_MoveToFolder(t *testing.T) {
	saved, jobs, userID, jobID := savedJobsFixture()
	uc := NewSavedJobUsecase(saved, jobs, nil)
	ctx := context.Background()

	if err := uc.SaveJob(ctx, userID, jobID, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	folder, err := uc.CreateFolder(ctx, userID, "Aplicar depois")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.MoveToFolder(ctx, userID, jobID, &folder.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.MoveToFolder(ctx, userID, jobID, nil); err != nil {
		t.Fatalf("moving back to unfiled failed: %v", err)
	}
}

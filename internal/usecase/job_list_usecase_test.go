package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vaga-hub/internal/domain/job"
	"vaga-hub/internal/domain/listing"

	"github.com/google/uuid"
)

func salaryPtr(v int64) *int64 { return &v }

func listFixture(now time.Time) []job.Job {
	return []job.Job{
		{
			ID:       uuid.New(),
			Company:  "TechCorp",
			Title:    "Desenvolvedor Frontend Sênior",
			Location: "São Paulo - Remoto",
			Level:    "Sênior",
			Type:     "Tempo Integral",
			Salary:   salaryPtr(12000),
			Posted:   now.AddDate(0, 0, -2),
		},
		{
			ID:       uuid.New(),
			Company:  "DataWorks",
			Title:    "Engenheiro de Dados Pleno",
			Location: "Rio de Janeiro",
			Level:    "Pleno",
			Type:     "Contrato",
			Salary:   salaryPtr(9000),
			Posted:   now.AddDate(0, 0, -20),
		},
		{
			ID:       uuid.New(),
			Company:  "StartHub",
			Title:    "Desenvolvedor Backend Júnior",
			Location: "Remoto",
			Level:    "Júnior",
			Type:     "Meio Período",
			Salary:   nil,
			Posted:   now.AddDate(0, 0, -40),
		},
	}
}

func TestJobListUsecase_InvalidPerPage(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{}, nil, 0, nil)
	_, err := uc.ListJobs(context.Background(), JobListParams{PerPage: 51})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobListUsecase_EmptyCriteriaReturnsAll(t *testing.T) {
	now := time.Now().UTC()
	uc := NewJobListUsecase(&mockJobRepo{jobs: listFixture(now)}, nil, 0, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("expected total 3, got %d", res.Total)
	}
	if res.PerPage != listing.DefaultPageSize {
		t.Fatalf("expected default page size, got %d", res.PerPage)
	}
	if res.TotalPages != 1 {
		t.Fatalf("expected 1 page, got %d", res.TotalPages)
	}
}

func TestJobListUsecase_FiltersAndSorts(t *testing.T) {
	now := time.Now().UTC()
	uc := NewJobListUsecase(&mockJobRepo{jobs: listFixture(now)}, nil, 0, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{
		Criteria: listing.Criteria{Search: "desenvolvedor"},
		Sort:     listing.SortHighSalary,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 matches, got %d", res.Total)
	}
	if res.Jobs[0].Company != "TechCorp" {
		t.Fatalf("expected highest salary first, got %s", res.Jobs[0].Company)
	}
}

func TestJobListUsecase_Paginates(t *testing.T) {
	now := time.Now().UTC()
	uc := NewJobListUsecase(&mockJobRepo{jobs: listFixture(now)}, nil, 0, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Jobs) != 1 {
		t.Fatalf("expected 1 job on page 2, got %d", len(res.Jobs))
	}
	if res.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", res.TotalPages)
	}
}

func TestJobListUsecase_ServesFromCache(t *testing.T) {
	now := time.Now().UTC()
	cache := newMockCache()
	repo := &mockJobRepo{jobs: listFixture(now)}
	uc := NewJobListUsecase(repo, cache, time.Minute, nil)

	first, err := uc.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Changing the backing data must not show through while the key is
	// cached.
	repo.jobs = nil
	second, err := uc.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if second.Total != first.Total {
		t.Fatalf("expected cached total %d, got %d", first.Total, second.Total)
	}
}

func TestJobListUsecase_RepoError(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{err: errors.New("boom")}, nil, 0, nil)
	_, err := uc.ListJobs(context.Background(), JobListParams{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

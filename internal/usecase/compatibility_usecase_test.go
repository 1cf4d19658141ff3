package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vaga-hub/internal/domain/job"
	"vaga-hub/internal/domain/user"
	"vaga-hub/internal/infrastructure/ai/gemini"

	"github.com/google/uuid"
)

type stubExplainer struct {
	text string
	err  error
}

func (s stubExplainer) Explain(context.Context, gemini.ExplainInput) (string, error) {
	return s.text, s.err
}

func compatibilityFixture() (*mockUserRepo, *mockJobRepo, uuid.UUID, uuid.UUID) {
	userID := uuid.New()
	jobID := uuid.New()
	users := &mockUserRepo{profile: user.Profile{
		UserID: userID,
		Skills: []user.Skill{{Name: "React", Level: 70}, {Name: "TypeScript", Level: 60}},
		Experience: []user.Experience{
			{Position: "Desenvolvedor Frontend", Level: "Pleno"},
		},
	}}
	jobs := &mockJobRepo{jobs: []job.Job{{
		ID:           jobID,
		Title:        "Desenvolvedor Frontend",
		Level:        "Pleno",
		Requirements: []string{"React", "TypeScript", "GraphQL"},
	}}}
	return users, jobs, userID, jobID
}

func TestCompatibility_LocalScore(t *testing.T) {
	users, jobs, userID, jobID := compatibilityFixture()
	uc := NewCompatibilityUsecase(users, jobs, nil, nil)

	res, err := uc.Compatibility(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score < 66 || res.Score > 67 {
		t.Fatalf("expected 2/3 coverage, got %.2f", res.Score)
	}
	if res.Source != ExplanationSourceLocal {
		t.Fatalf("expected local source, got %s", res.Source)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "GraphQL" {
		t.Fatalf("unexpected missing list: %v", res.Missing)
	}
}

func TestCompatibility_AIExplanationReplacesDetailsOnly(t *testing.T) {
	users, jobs, userID, jobID := compatibilityFixture()
	uc := NewCompatibilityUsecase(users, jobs, stubExplainer{text: "análise detalhada"}, nil)

	res, err := uc.Compatibility(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != ExplanationSourceAI {
		t.Fatalf("expected ai source, got %s", res.Source)
	}
	if res.Details != "análise detalhada" {
		t.Fatalf("unexpected details: %q", res.Details)
	}
	if res.Score < 66 || res.Score > 67 {
		t.Fatalf("score must stay locally computed, got %.2f", res.Score)
	}
}

func TestCompatibility_FallsBackWhenAIFails(t *testing.T) {
	users, jobs, userID, jobID := compatibilityFixture()
	uc := NewCompatibilityUsecase(users, jobs, stubExplainer{err: errors.New("quota")}, nil)

	res, err := uc.Compatibility(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != ExplanationSourceLocal {
		t.Fatalf("expected local fallback, got %s", res.Source)
	}
	if res.Details == "" {
		t.Fatalf("expected local explanation text")
	}
}

func TestCompatibility_EmptyProfile(t *testing.T) {
	users, jobs, userID, jobID := compatibilityFixture()
	users.profile.Skills = nil
	uc := NewCompatibilityUsecase(users, jobs, stubExplainer{text: "ignored"}, nil)

	res, err := uc.Compatibility(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("expected zero score, got %.2f", res.Score)
	}
	if !strings.Contains(res.Details, "incompleto") {
		t.Fatalf("expected incomplete-profile message, got %q", res.Details)
	}
	if res.Source != ExplanationSourceLocal {
		t.Fatalf("AI must not run for an empty profile")
	}
}

func TestCompatibility_SenioritySubScore(t *testing.T) {
	users, jobs, userID, jobID := compatibilityFixture()
	uc := NewCompatibilityUsecase(users, jobs, nil, nil)

	res, err := uc.Compatibility(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SeniorityScore == nil {
		t.Fatalf("expected seniority sub-score for profile with experience")
	}
	if *res.SeniorityScore != 100 {
		t.Fatalf("expected 100 for exact position and level, got %.2f", *res.SeniorityScore)
	}

	users.profile.Experience = nil
	res, err = uc.Compatibility(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SeniorityScore != nil {
		t.Fatalf("expected no seniority sub-score without experience")
	}
}

func TestCompatibility_JobNotFound(t *testing.T) {
	users, jobs, userID, _ := compatibilityFixture()
	uc := NewCompatibilityUsecase(users, jobs, nil, nil)

	_, err := uc.Compatibility(context.Background(), userID, uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

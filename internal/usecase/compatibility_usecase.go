package usecase

import (
	"context"
	"errors"
	"log"

	"vaga-hub/internal/domain/scoring"
	"vaga-hub/internal/domain/user"
	"vaga-hub/internal/infrastructure/ai/gemini"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

const (
	ExplanationSourceLocal = "local"
	ExplanationSourceAI    = "ai"
)

// CompatibilityResult carries the deterministic score plus its explanation.
// SeniorityScore is a separate optional dimension and is never blended into
// Score.
type CompatibilityResult struct {
	Score          float64  `json:"score"`
	Details        string   `json:"details"`
	Matched        []string `json:"matched"`
	Missing        []string `json:"missing"`
	Source         string   `json:"source"`
	SeniorityScore *float64 `json:"seniority_score,omitempty"`
}

type CompatibilityUsecase interface {
	Compatibility(ctx context.Context, userID, jobID uuid.UUID) (CompatibilityResult, error)
}

type explainer interface {
	Explain(ctx context.Context, in gemini.ExplainInput) (string, error)
}

type Compatibility struct {
	users  user.Repository
	jobs   repository.JobRepository
	skills scoring.RelatedSkills
	titles scoring.RelatedTitles
	ai     explainer
	logger *log.Logger
}

func NewCompatibilityUsecase(users user.Repository, jobs repository.JobRepository, ai explainer, logger *log.Logger) *Compatibility {
	return &Compatibility{
		users:  users,
		jobs:   jobs,
		skills: scoring.DefaultRelatedSkills(),
		titles: scoring.DefaultRelatedTitles(),
		ai:     ai,
		logger: logger,
	}
}

func (u *Compatibility) Compatibility(ctx context.Context, userID, jobID uuid.UUID) (CompatibilityResult, error) {
	if userID == uuid.Nil {
		return CompatibilityResult{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return CompatibilityResult{}, ErrInvalidInput
	}

	profile, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		return CompatibilityResult{}, ErrInternal
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return CompatibilityResult{}, ErrNotFound
		}
		return CompatibilityResult{}, ErrInternal
	}

	skills := make([]scoring.Skill, 0, len(profile.Skills))
	skillNames := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		skills = append(skills, scoring.Skill{Name: s.Name, Level: s.Level})
		skillNames = append(skillNames, s.Name)
	}

	local := scoring.Compute(skills, j.Requirements, u.skills)

	out := CompatibilityResult{
		Score:   local.Score,
		Details: local.Details,
		Matched: local.Matched,
		Missing: local.Missing,
		Source:  ExplanationSourceLocal,
	}

	// The AI text only replaces the explanation. The computed score stays
	// authoritative regardless of what the model says.
	if u.ai != nil && len(skills) > 0 && len(j.Requirements) > 0 {
		text, err := u.ai.Explain(ctx, gemini.ExplainInput{
			Skills:       skillNames,
			Requirements: j.Requirements,
			JobTitle:     j.Title,
			JobLevel:     j.Level,
		})
		if err == nil && text != "" {
			out.Details = text
			out.Source = ExplanationSourceAI
		} else if err != nil && u.logger != nil {
			u.logger.Printf("[Compatibility] AI explanation unavailable, using local details: %v", err)
		}
	}

	if sub, ok := u.seniority(profile, j.Title, j.Level); ok {
		out.SeniorityScore = &sub
	}

	return out, nil
}

func (u *Compatibility) seniority(p user.Profile, jobTitle, jobLevel string) (float64, bool) {
	if len(p.Experience) == 0 {
		return 0, false
	}
	exps := make([]scoring.Experience, 0, len(p.Experience))
	for _, e := range p.Experience {
		exps = append(exps, scoring.Experience{Position: e.Position, Level: e.Level})
	}
	return scoring.SenioritySub(exps, jobTitle, jobLevel, u.titles), true
}

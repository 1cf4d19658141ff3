package usecase

import (
	"context"
	"log"
	"time"

	"vaga-hub/internal/domain/scoring"
	"vaga-hub/internal/domain/user"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]JobSummary, error)
}

type JobRecommendation struct {
	users  user.Repository
	jobs   repository.JobRepository
	cache  SearchCache
	ttl    time.Duration
	logger *log.Logger
	now    func() time.Time
}

func NewJobRecommendationUsecase(users user.Repository, jobs repository.JobRepository, cache SearchCache, ttl time.Duration, logger *log.Logger) *JobRecommendation {
	return &JobRecommendation{users: users, jobs: jobs, cache: cache, ttl: ttl, logger: logger, now: time.Now}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]JobSummary, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = scoring.DefaultRecommendLimit
	}
	if limit > 50 {
		return nil, ErrInvalidInput
	}

	cacheKey := RecommendationsCacheKey(userID)
	if u.cache != nil && limit == scoring.DefaultRecommendLimit {
		var cached []JobSummary
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Recommendations] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	profile, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	all, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	sp := scoring.Profile{
		DesiredPosition: profile.DesiredPosition,
		Location:        profile.Location,
	}
	for _, s := range profile.Skills {
		sp.Skills = append(sp.Skills, scoring.Skill{Name: s.Name, Level: s.Level})
	}
	for _, e := range profile.Experience {
		sp.Experience = append(sp.Experience, scoring.Experience{Position: e.Position, Level: e.Level})
	}

	candidates := make([]scoring.Job, 0, len(all))
	for i, j := range all {
		candidates = append(candidates, scoring.Job{
			OriginalIndex: i,
			Title:         j.Title,
			Location:      j.Location,
			Level:         j.Level,
			Requirements:  j.Requirements,
			Posted:        j.Posted,
		})
	}

	ranked := scoring.Recommend(sp, candidates, limit, u.now(), u.logger)

	out := make([]JobSummary, 0, len(ranked))
	for _, r := range ranked {
		if r.OriginalIndex < 0 || r.OriginalIndex >= len(all) {
			continue
		}
		out = append(out, toJobSummary(all[r.OriginalIndex]))
	}

	if u.cache != nil && limit == scoring.DefaultRecommendLimit {
		_ = u.cache.SetJSON(ctx, cacheKey, out, u.ttl)
	}
	return out, nil
}

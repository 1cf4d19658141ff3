package usecase

import (
	"context"
	"errors"
	"strings"

	"vaga-hub/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	UpdateProfile(ctx context.Context, p user.Profile) (user.Profile, error)
}

type Profile struct {
	users user.Repository
	cache SearchCache
}

func NewProfileUsecase(users user.Repository, cache SearchCache) *Profile {
	return &Profile{users: users, cache: cache}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	p, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

// GetPublicProfile is the profile as other users see it: contact details
// are stripped and a missing user is a not-found, not an empty profile.
func (u *Profile) GetPublicProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrNotFound
	}

	if _, err := u.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Profile{}, ErrNotFound
		}
		return user.Profile{}, ErrInternal
	}

	p, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		return user.Profile{}, ErrInternal
	}

	p.ContactMethod = ""
	p.ContactValue = ""
	return p, nil
}

// UpdateProfile normalizes skills before persisting and drops the user's
// cached recommendations, since they were ranked on the old profile.
func (u *Profile) UpdateProfile(ctx context.Context, p user.Profile) (user.Profile, error) {
	if p.UserID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}

	skills := make([]user.Skill, 0, len(p.Skills))
	for _, s := range p.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		skills = append(skills, user.NormalizeSkill(name, s.Level))
	}
	p.Skills = skills

	if err := u.users.UpsertProfile(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, RecommendationsCacheKey(p.UserID))
	}

	saved, err := u.users.GetProfile(ctx, p.UserID)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return saved, nil
}

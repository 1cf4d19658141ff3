package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vaga-hub/internal/domain/activity"
	"vaga-hub/internal/domain/listing"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

var ErrSavedFilterExists = errors.New("saved filter already exists")

type SavedFilterUsecase interface {
	CreateFilter(ctx context.Context, userID uuid.UUID, name string, criteria listing.Criteria) (activity.SavedFilter, error)
	DeleteFilter(ctx context.Context, userID, filterID uuid.UUID) error
	ListFilters(ctx context.Context, userID uuid.UUID) ([]activity.SavedFilter, error)
}

type SavedFilters struct {
	filters repository.SavedFilterRepository
}

func NewSavedFilterUsecase(filters repository.SavedFilterRepository) *SavedFilters {
	return &SavedFilters{filters: filters}
}

func (u *SavedFilters) CreateFilter(ctx context.Context, userID uuid.UUID, name string, criteria listing.Criteria) (activity.SavedFilter, error) {
	if userID == uuid.Nil {
		return activity.SavedFilter{}, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return activity.SavedFilter{}, ErrInvalidInput
	}

	f := activity.SavedFilter{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Criteria:  criteria,
		CreatedAt: time.Now().UTC(),
	}
	err := u.filters.Create(ctx, f)
	if errors.Is(err, repository.ErrSavedFilterExists) {
		return activity.SavedFilter{}, ErrSavedFilterExists
	}
	if err != nil {
		return activity.SavedFilter{}, ErrInternal
	}
	return f, nil
}

func (u *SavedFilters) DeleteFilter(ctx context.Context, userID, filterID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if filterID == uuid.Nil {
		return ErrInvalidInput
	}
	err := u.filters.Delete(ctx, userID, filterID)
	if errors.Is(err, repository.ErrSavedFilterNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

func (u *SavedFilters) ListFilters(ctx context.Context, userID uuid.UUID) ([]activity.SavedFilter, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	filters, err := u.filters.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return filters, nil
}

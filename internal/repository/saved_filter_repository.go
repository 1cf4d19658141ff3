package repository

import (
	"context"
	"encoding/json"
	"errors"

	"vaga-hub/internal/database"
	"vaga-hub/internal/domain/activity"
	"vaga-hub/internal/domain/listing"

	"github.com/google/uuid"
)

var (
	ErrSavedFilterExists   = errors.New("saved filter already exists")
	ErrSavedFilterNotFound = errors.New("saved filter not found")
)

type SavedFilterRepository interface {
	Create(ctx context.Context, f activity.SavedFilter) error
	Delete(ctx context.Context, userID, filterID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]activity.SavedFilter, error)
}

type PostgresSavedFilterRepository struct {
	db database.DB
}

func NewPostgresSavedFilterRepository(db database.DB) *PostgresSavedFilterRepository {
	return &PostgresSavedFilterRepository{db: db}
}

func (r *PostgresSavedFilterRepository) Create(ctx context.Context, f activity.SavedFilter) error {
	criteria, err := json.Marshal(f.Criteria)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO saved_filters (id, user_id, name, criteria, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.UserID, f.Name, criteria, f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSavedFilterExists
		}
		return err
	}
	return nil
}

func (r *PostgresSavedFilterRepository) Delete(ctx context.Context, userID, filterID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM saved_filters WHERE id = $1 AND user_id = $2`, filterID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSavedFilterNotFound
	}
	return nil
}

func (r *PostgresSavedFilterRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]activity.SavedFilter, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, criteria, created_at
		 FROM saved_filters WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var filters []activity.SavedFilter
	for rows.Next() {
		var f activity.SavedFilter
		var criteriaRaw []byte
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &criteriaRaw, &f.CreatedAt); err != nil {
			return nil, err
		}
		var c listing.Criteria
		if err := json.Unmarshal(criteriaRaw, &c); err != nil {
			return nil, err
		}
		f.Criteria = c
		filters = append(filters, f)
	}
	return filters, rows.Err()
}

package repository

import (
	"context"
	"errors"

	"vaga-hub/internal/database"
	"vaga-hub/internal/domain/activity"

	"github.com/google/uuid"
)

var ErrAlreadyApplied = errors.New("application already registered")

type ApplicationRepository interface {
	Create(ctx context.Context, a activity.Application) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]activity.Application, error)
	Exists(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a activity.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, job_id, applied_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.UserID, a.JobID, a.AppliedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]activity.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, applied_at
		 FROM applications WHERE user_id = $1 ORDER BY applied_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []activity.Application
	for rows.Next() {
		var a activity.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`, userID, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

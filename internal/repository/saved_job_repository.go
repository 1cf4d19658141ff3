package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"vaga-hub/internal/database"
	"vaga-hub/internal/domain/activity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrAlreadySaved     = errors.New("job already saved")
	ErrSavedJobNotFound = errors.New("saved job not found")
	ErrFolderNotFound   = errors.New("folder not found")
	ErrFolderExists     = errors.New("folder already exists")
)

type SavedJobRepository interface {
	Save(ctx context.Context, s activity.SavedJob) error
	Unsave(ctx context.Context, userID, jobID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]activity.SavedJob, error)
	IsSaved(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	SetFolder(ctx context.Context, userID, jobID uuid.UUID, folderID *uuid.UUID) error

	CreateFolder(ctx context.Context, f activity.Folder) error
	DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error
	ListFolders(ctx context.Context, userID uuid.UUID) ([]activity.Folder, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) Save(ctx context.Context, s activity.SavedJob) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (id, user_id, job_id, folder_id, saved_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.JobID, s.FolderID, s.SavedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (r *PostgresSavedJobRepository) Unsave(ctx context.Context, userID, jobID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *PostgresSavedJobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]activity.SavedJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, folder_id, saved_at
		 FROM saved_jobs WHERE user_id = $1 ORDER BY saved_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []activity.SavedJob
	for rows.Next() {
		var s activity.SavedJob
		if err := rows.Scan(&s.ID, &s.UserID, &s.JobID, &s.FolderID, &s.SavedAt); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

func (r *PostgresSavedJobRepository) IsSaved(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE user_id = $1 AND job_id = $2)`, userID, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSavedJobRepository) SetFolder(ctx context.Context, userID, jobID uuid.UUID, folderID *uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE saved_jobs SET folder_id = $3 WHERE user_id = $1 AND job_id = $2`,
		userID, jobID, folderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *PostgresSavedJobRepository) CreateFolder(ctx context.Context, f activity.Folder) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO folders (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		f.ID, f.UserID, f.Name, f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrFolderExists
		}
		return err
	}
	return nil
}

// DeleteFolder removes the folder; saved jobs inside it fall back to the
// unfiled state via ON DELETE SET NULL.
func (r *PostgresSavedJobRepository) DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM folders WHERE id = $1 AND user_id = $2`, folderID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFolderNotFound
	}
	return nil
}

func (r *PostgresSavedJobRepository) ListFolders(ctx context.Context, userID uuid.UUID) ([]activity.Folder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, created_at
		 FROM folders WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []activity.Folder
	for rows.Next() {
		var f activity.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func isUniqueViolation(err error) bool {
	// 23505 is Postgres' unique_violation class; matched on the message so
	// the check works through both the pgx and database/sql paths.
	return err != nil && (strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key"))
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

package repository

import (
	"context"
	"errors"

	"vaga-hub/internal/database"
	"vaga-hub/internal/domain/job"

	"github.com/google/uuid"
)

var ErrReportNotFound = errors.New("report not found")

type JobReportRepository interface {
	Create(ctx context.Context, r job.Report) error
	List(ctx context.Context, status string) ([]job.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type PostgresJobReportRepository struct {
	db database.DB
}

func NewPostgresJobReportRepository(db database.DB) *PostgresJobReportRepository {
	return &PostgresJobReportRepository{db: db}
}

func (r *PostgresJobReportRepository) Create(ctx context.Context, rep job.Report) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_reports (id, job_id, job_title, job_url, reason, comments, user_email, status, reported_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rep.ID, rep.JobID, rep.JobTitle, rep.JobURL, rep.Reason, rep.Comments,
		rep.UserEmail, rep.Status, rep.ReportedAt)
	return err
}

// List returns reports newest first; an empty status means all of them.
func (r *PostgresJobReportRepository) List(ctx context.Context, status string) ([]job.Report, error) {
	query := `SELECT id, job_id, job_title, job_url, reason, comments, user_email, status, reported_at
	          FROM job_reports`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY reported_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []job.Report
	for rows.Next() {
		var rep job.Report
		if err := rows.Scan(&rep.ID, &rep.JobID, &rep.JobTitle, &rep.JobURL, &rep.Reason,
			&rep.Comments, &rep.UserEmail, &rep.Status, &rep.ReportedAt); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *PostgresJobReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_reports SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReportNotFound
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vaga-hub/internal/database"
	"vaga-hub/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// Counter columns that can be bumped atomically. The whitelist keeps the
// column name out of caller control.
const (
	CounterView  = "view_count"
	CounterSave  = "save_count"
	CounterShare = "share_count"
	CounterApply = "apply_count"
)

type JobRepository interface {
	ListAll(ctx context.Context) ([]job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, j job.Job) error
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementCounter(ctx context.Context, id uuid.UUID, counter string) error
	BulkUpsert(ctx context.Context, jobs []job.Job) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, company, logo, title, location, salary, type, level, posted,
	description, details, requirements, benefits, tags, application_url,
	country_code, is_sponsored, view_count, save_count, share_count, apply_count,
	created_at, updated_at`

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY posted DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	reqs, benefits, tags, err := marshalJobLists(j)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (id, company, logo, title, location, salary, type, level, posted,
		                   description, details, requirements, benefits, tags, application_url,
		                   country_code, is_sponsored)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		j.ID, j.Company, j.Logo, j.Title, j.Location, j.Salary, j.Type, j.Level, j.Posted,
		j.Description, j.Details, reqs, benefits, tags, j.ApplicationURL,
		j.CountryCode, j.IsSponsored,
	)
	return err
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	reqs, benefits, tags, err := marshalJobLists(j)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET company = $2, logo = $3, title = $4, location = $5, salary = $6,
		                 type = $7, level = $8, posted = $9, description = $10, details = $11,
		                 requirements = $12, benefits = $13, tags = $14, application_url = $15,
		                 country_code = $16, is_sponsored = $17, updated_at = $18
		 WHERE id = $1`,
		j.ID, j.Company, j.Logo, j.Title, j.Location, j.Salary,
		j.Type, j.Level, j.Posted, j.Description, j.Details,
		reqs, benefits, tags, j.ApplicationURL,
		j.CountryCode, j.IsSponsored, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) IncrementCounter(ctx context.Context, id uuid.UUID, counter string) error {
	switch counter {
	case CounterView, CounterSave, CounterShare, CounterApply:
	default:
		return fmt.Errorf("unknown job counter %q", counter)
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET `+counter+` = `+counter+` + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// BulkUpsert imports a batch of jobs inside one transaction and reports how
// many rows were written. Existing rows keep their engagement counters.
func (r *PostgresJobRepository) BulkUpsert(ctx context.Context, jobs []job.Job) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	written := 0
	for _, j := range jobs {
		reqs, benefits, tags, err := marshalJobLists(j)
		if err != nil {
			return written, err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO jobs (id, company, logo, title, location, salary, type, level, posted,
			                   description, details, requirements, benefits, tags, application_url,
			                   country_code, is_sponsored)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			 ON CONFLICT (id) DO UPDATE SET
			   company = EXCLUDED.company,
			   logo = EXCLUDED.logo,
			   title = EXCLUDED.title,
			   location = EXCLUDED.location,
			   salary = EXCLUDED.salary,
			   type = EXCLUDED.type,
			   level = EXCLUDED.level,
			   posted = EXCLUDED.posted,
			   description = EXCLUDED.description,
			   details = EXCLUDED.details,
			   requirements = EXCLUDED.requirements,
			   benefits = EXCLUDED.benefits,
			   tags = EXCLUDED.tags,
			   application_url = EXCLUDED.application_url,
			   country_code = EXCLUDED.country_code,
			   is_sponsored = EXCLUDED.is_sponsored,
			   updated_at = NOW()`,
			j.ID, j.Company, j.Logo, j.Title, j.Location, j.Salary, j.Type, j.Level, j.Posted,
			j.Description, j.Details, reqs, benefits, tags, j.ApplicationURL,
			j.CountryCode, j.IsSponsored,
		)
		if err != nil {
			return written, err
		}
		written++
	}
	if err := tx.Commit(ctx); err != nil {
		return written, err
	}
	return written, nil
}

func marshalJobLists(j job.Job) (reqs, benefits, tags []byte, err error) {
	if reqs, err = json.Marshal(emptyIfNil(j.Requirements)); err != nil {
		return nil, nil, nil, err
	}
	if benefits, err = json.Marshal(emptyIfNil(j.Benefits)); err != nil {
		return nil, nil, nil, err
	}
	if tags, err = json.Marshal(emptyIfNil(j.Tags)); err != nil {
		return nil, nil, nil, err
	}
	return reqs, benefits, tags, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var reqsRaw, benefitsRaw, tagsRaw []byte
	err := row.Scan(&j.ID, &j.Company, &j.Logo, &j.Title, &j.Location, &j.Salary,
		&j.Type, &j.Level, &j.Posted, &j.Description, &j.Details,
		&reqsRaw, &benefitsRaw, &tagsRaw, &j.ApplicationURL,
		&j.CountryCode, &j.IsSponsored,
		&j.ViewCount, &j.SaveCount, &j.ShareCount, &j.ApplyCount,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return job.Job{}, err
	}
	if err := json.Unmarshal(reqsRaw, &j.Requirements); err != nil {
		return job.Job{}, err
	}
	if err := json.Unmarshal(benefitsRaw, &j.Benefits); err != nil {
		return job.Job{}, err
	}
	if err := json.Unmarshal(tagsRaw, &j.Tags); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

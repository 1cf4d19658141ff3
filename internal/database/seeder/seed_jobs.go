package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vaga-hub/internal/database"

	"github.com/google/uuid"
)

// JobsSeeder loads a handful of sample postings so a fresh environment has
// something to browse. It only touches an empty jobs table.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

type sampleJob struct {
	Company      string
	Title        string
	Location     string
	Salary       *int64
	Type         string
	Level        string
	Description  string
	Requirements []string
	Benefits     []string
	Tags         []string
	CountryCode  string
}

func salary(v int64) *int64 { return &v }

func sampleJobs() []sampleJob {
	return []sampleJob{
		{
			Company:      "Nube Tech",
			Title:        "Desenvolvedor(a) Backend Go",
			Location:     "Remoto",
			Salary:       salary(12000),
			Type:         "CLT",
			Level:        "Pleno",
			Description:  "Atue no time de plataforma construindo APIs de alto volume.",
			Requirements: []string{"Go", "PostgreSQL", "Docker"},
			Benefits:     []string{"Plano de saúde", "Vale refeição"},
			Tags:         []string{"backend", "golang"},
			CountryCode:  "BR",
		},
		{
			Company:      "Loja Digital",
			Title:        "Engenheiro(a) Frontend React",
			Location:     "Remoto",
			Salary:       salary(9500),
			Type:         "PJ",
			Level:        "Pleno",
			Description:  "Evolua o checkout e as páginas de catálogo da loja.",
			Requirements: []string{"React", "TypeScript", "CSS"},
			Benefits:     []string{"Horário flexível"},
			Tags:         []string{"frontend", "react"},
			CountryCode:  "BR",
		},
		{
			Company:      "DadosCo",
			Title:        "Engenheiro(a) de Dados Sênior",
			Location:     "Remoto",
			Salary:       nil,
			Type:         "CLT",
			Level:        "Sênior",
			Description:  "Modele pipelines de ingestão e o data lake da empresa.",
			Requirements: []string{"Python", "SQL", "AWS"},
			Benefits:     []string{"Plano de saúde", "Stock options"},
			Tags:         []string{"dados", "aws"},
			CountryCode:  "BR",
		},
		{
			Company:      "StartHub",
			Title:        "Desenvolvedor(a) Full Stack Júnior",
			Location:     "Remoto",
			Salary:       salary(4500),
			Type:         "CLT",
			Level:        "Júnior",
			Description:  "Primeira vaga? Venha aprender com um time experiente.",
			Requirements: []string{"JavaScript", "Node.js"},
			Benefits:     []string{"Vale refeição", "Auxílio home office"},
			Tags:         []string{"fullstack", "junior"},
			CountryCode:  "BR",
		},
	}
}

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "company", "title", "location", "salary", "type", "level",
		"posted", "description", "requirements", "benefits", "tags",
		"country_code",
	); err != nil {
		return err
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	for i, s := range sampleJobs() {
		reqs, err := json.Marshal(s.Requirements)
		if err != nil {
			return err
		}
		benefits, err := json.Marshal(s.Benefits)
		if err != nil {
			return err
		}
		tags, err := json.Marshal(s.Tags)
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO jobs (id, company, title, location, salary, type, level, posted, description, requirements, benefits, tags, country_code)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			uuid.New(), s.Company, s.Title, s.Location, s.Salary, s.Type, s.Level,
			now.Add(-time.Duration(i)*24*time.Hour), s.Description, reqs, benefits, tags, s.CountryCode,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

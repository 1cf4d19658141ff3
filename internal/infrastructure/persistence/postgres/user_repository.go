package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"vaga-hub/internal/database"
	"vaga-hub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	role := u.Role
	if role == "" {
		role = user.RoleUser
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, first_name, last_name)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.PasswordHash, role, u.FirstName, u.LastName,
	)
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, first_name, last_name, created_at, updated_at
		 FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, first_name, last_name, created_at, updated_at
		 FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// skillRecord tolerates the legacy duck-typed skill shape: a JSON string
// ("React") or an object ({"name":"React","level":70}). Either form is
// normalized to user.Skill right here, so nothing downstream branches on
// shape.
type skillRecord user.Skill

func (s *skillRecord) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*s = skillRecord(user.NormalizeSkill(name, 0))
		return nil
	}

	var obj struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*s = skillRecord(user.NormalizeSkill(obj.Name, obj.Level))
	return nil
}

type experienceRecord struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Level       string `json:"level"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type educationRecord struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduation_date"`
}

type portfolioLinkRecord struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, desired_position, location, bio, linkedin_url, avatar_url,
		        contact_method, contact_value, skills, experience, education, portfolio_links, updated_at
		 FROM profiles WHERE user_id = $1`, userID)

	var p user.Profile
	var skillsRaw, expRaw, eduRaw, linksRaw []byte
	err := row.Scan(&p.UserID, &p.DesiredPosition, &p.Location, &p.Bio, &p.LinkedinURL, &p.AvatarURL,
		&p.ContactMethod, &p.ContactValue, &skillsRaw, &expRaw, &eduRaw, &linksRaw, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			// A user without a saved profile is an empty profile, not an error:
			// scoring treats it as the incomplete-profile case.
			return user.Profile{UserID: userID}, nil
		}
		return user.Profile{}, err
	}

	var skills []skillRecord
	if err := json.Unmarshal(skillsRaw, &skills); err != nil {
		return user.Profile{}, err
	}
	p.Skills = make([]user.Skill, 0, len(skills))
	for _, s := range skills {
		if s.Name == "" {
			continue
		}
		p.Skills = append(p.Skills, user.Skill(s))
	}

	var exps []experienceRecord
	if err := json.Unmarshal(expRaw, &exps); err != nil {
		return user.Profile{}, err
	}
	p.Experience = make([]user.Experience, 0, len(exps))
	for _, e := range exps {
		p.Experience = append(p.Experience, user.Experience(e))
	}

	var edus []educationRecord
	if err := json.Unmarshal(eduRaw, &edus); err != nil {
		return user.Profile{}, err
	}
	p.Education = make([]user.Education, 0, len(edus))
	for _, e := range edus {
		p.Education = append(p.Education, user.Education(e))
	}

	var links []portfolioLinkRecord
	if err := json.Unmarshal(linksRaw, &links); err != nil {
		return user.Profile{}, err
	}
	p.PortfolioLinks = make([]user.PortfolioLink, 0, len(links))
	for _, l := range links {
		p.PortfolioLinks = append(p.PortfolioLinks, user.PortfolioLink(l))
	}

	return p, nil
}

func (r *UserRepository) UpsertProfile(ctx context.Context, p user.Profile) error {
	skills := make([]skillRecord, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, skillRecord(user.NormalizeSkill(s.Name, s.Level)))
	}
	exps := make([]experienceRecord, 0, len(p.Experience))
	for _, e := range p.Experience {
		exps = append(exps, experienceRecord(e))
	}
	edus := make([]educationRecord, 0, len(p.Education))
	for _, e := range p.Education {
		edus = append(edus, educationRecord(e))
	}
	links := make([]portfolioLinkRecord, 0, len(p.PortfolioLinks))
	for _, l := range p.PortfolioLinks {
		links = append(links, portfolioLinkRecord(l))
	}

	skillsRaw, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	expRaw, err := json.Marshal(exps)
	if err != nil {
		return err
	}
	eduRaw, err := json.Marshal(edus)
	if err != nil {
		return err
	}
	linksRaw, err := json.Marshal(links)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO profiles (user_id, desired_position, location, bio, linkedin_url, avatar_url,
		                       contact_method, contact_value, skills, experience, education, portfolio_links, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (user_id) DO UPDATE SET
		   desired_position = EXCLUDED.desired_position,
		   location = EXCLUDED.location,
		   bio = EXCLUDED.bio,
		   linkedin_url = EXCLUDED.linkedin_url,
		   avatar_url = EXCLUDED.avatar_url,
		   contact_method = EXCLUDED.contact_method,
		   contact_value = EXCLUDED.contact_value,
		   skills = EXCLUDED.skills,
		   experience = EXCLUDED.experience,
		   education = EXCLUDED.education,
		   portfolio_links = EXCLUDED.portfolio_links,
		   updated_at = EXCLUDED.updated_at`,
		p.UserID, p.DesiredPosition, p.Location, p.Bio, p.LinkedinURL, p.AvatarURL,
		p.ContactMethod, p.ContactValue, skillsRaw, expRaw, eduRaw, linksRaw, time.Now().UTC(),
	)
	return err
}

// UnmarshalSkillRecord exposes the duck-typed skill decoding to the HTTP
// layer, which accepts the same legacy payloads.
func UnmarshalSkillRecord(b []byte) (user.Skill, error) {
	var s skillRecord
	if err := s.UnmarshalJSON(b); err != nil {
		return user.Skill{}, err
	}
	return user.Skill(s), nil
}

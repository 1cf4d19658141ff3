package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the career data a compatibility or relevance score is computed
// against. Skills are always stored in the normalized {name, level} shape;
// any duck-typed input ("Go" vs {"name":"Go","level":70}) is resolved at the
// ingestion boundary, never inside scoring code.
type Profile struct {
	UserID          uuid.UUID
	DesiredPosition string
	Location        string
	Bio             string
	LinkedinURL     string
	AvatarURL       string
	ContactMethod   string
	ContactValue    string
	Skills          []Skill
	Experience      []Experience
	Education       []Education
	PortfolioLinks  []PortfolioLink
	UpdatedAt       time.Time
}

const DefaultSkillLevel = 50

type Skill struct {
	Name  string
	Level int
}

// NormalizeSkill resolves the legacy free-form skill shape. An empty or
// out-of-range level falls back to DefaultSkillLevel.
func NormalizeSkill(name string, level int) Skill {
	if level <= 0 || level > 100 {
		level = DefaultSkillLevel
	}
	return Skill{Name: name, Level: level}
}

type Experience struct {
	Company     string
	Position    string
	Level       string
	StartDate   string
	EndDate     string
	Description string
}

type Education struct {
	Institution    string
	Degree         string
	Field          string
	GraduationDate string
}

type PortfolioLink struct {
	Title string
	URL   string
}

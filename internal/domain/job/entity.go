package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a single posting as stored by the persistence layer. Salary is nil
// when the posting is "a combinar" (negotiable).
type Job struct {
	ID             uuid.UUID
	Company        string
	Logo           string
	Title          string
	Location       string
	Salary         *int64
	Type           string
	Level          string
	Posted         time.Time
	Description    string
	Details        string
	Requirements   []string
	Benefits       []string
	Tags           []string
	ApplicationURL string
	CountryCode    string
	IsSponsored    bool
	ViewCount      int
	SaveCount      int
	ShareCount     int
	ApplyCount     int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Report struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	JobTitle   string
	JobURL     string
	Reason     string
	Comments   string
	UserEmail  string
	Status     string
	ReportedAt time.Time
}

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)

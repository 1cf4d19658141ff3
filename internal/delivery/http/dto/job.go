package dto

import (
	"time"

	"vaga-hub/internal/domain/job"

	"github.com/google/uuid"
)

// JobDetailResponse is the full posting shown on the detail page,
// engagement counters included.
type JobDetailResponse struct {
	ID             uuid.UUID `json:"id"`
	Company        string    `json:"company"`
	Logo           string    `json:"logo"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	Salary         *int64    `json:"salary"`
	Type           string    `json:"type"`
	Level          string    `json:"level"`
	Posted         time.Time `json:"posted"`
	Description    string    `json:"description"`
	Details        string    `json:"details"`
	Requirements   []string  `json:"requirements"`
	Benefits       []string  `json:"benefits"`
	Tags           []string  `json:"tags"`
	ApplicationURL string    `json:"application_url"`
	CountryCode    string    `json:"country_code"`
	IsSponsored    bool      `json:"is_sponsored"`
	ViewCount      int       `json:"view_count"`
	SaveCount      int       `json:"save_count"`
	ShareCount     int       `json:"share_count"`
	ApplyCount     int       `json:"apply_count"`
}

func FromJob(j job.Job) JobDetailResponse {
	return JobDetailResponse{
		ID:             j.ID,
		Company:        j.Company,
		Logo:           j.Logo,
		Title:          j.Title,
		Location:       j.Location,
		Salary:         j.Salary,
		Type:           j.Type,
		Level:          j.Level,
		Posted:         j.Posted,
		Description:    j.Description,
		Details:        j.Details,
		Requirements:   j.Requirements,
		Benefits:       j.Benefits,
		Tags:           j.Tags,
		ApplicationURL: j.ApplicationURL,
		CountryCode:    j.CountryCode,
		IsSponsored:    j.IsSponsored,
		ViewCount:      j.ViewCount,
		SaveCount:      j.SaveCount,
		ShareCount:     j.ShareCount,
		ApplyCount:     j.ApplyCount,
	}
}

// JobRequest is the admin create/update payload.
type JobRequest struct {
	Company        string    `json:"company"`
	Logo           string    `json:"logo"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	Salary         *int64    `json:"salary"`
	Type           string    `json:"type"`
	Level          string    `json:"level"`
	Posted         time.Time `json:"posted"`
	Description    string    `json:"description"`
	Details        string    `json:"details"`
	Requirements   []string  `json:"requirements"`
	Benefits       []string  `json:"benefits"`
	Tags           []string  `json:"tags"`
	ApplicationURL string    `json:"application_url"`
	CountryCode    string    `json:"country_code"`
	IsSponsored    bool      `json:"is_sponsored"`
}

func (r JobRequest) ToJob(id uuid.UUID) job.Job {
	return job.Job{
		ID:             id,
		Company:        r.Company,
		Logo:           r.Logo,
		Title:          r.Title,
		Location:       r.Location,
		Salary:         r.Salary,
		Type:           r.Type,
		Level:          r.Level,
		Posted:         r.Posted,
		Description:    r.Description,
		Details:        r.Details,
		Requirements:   r.Requirements,
		Benefits:       r.Benefits,
		Tags:           r.Tags,
		ApplicationURL: r.ApplicationURL,
		CountryCode:    r.CountryCode,
		IsSponsored:    r.IsSponsored,
	}
}

type ReportRequest struct {
	Reason    string `json:"reason"`
	Comments  string `json:"comments"`
	UserEmail string `json:"user_email"`
}

type ReportResponse struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	JobTitle   string    `json:"job_title"`
	JobURL     string    `json:"job_url"`
	Reason     string    `json:"reason"`
	Comments   string    `json:"comments"`
	UserEmail  string    `json:"user_email"`
	Status     string    `json:"status"`
	ReportedAt time.Time `json:"reported_at"`
}

func FromReport(r job.Report) ReportResponse {
	return ReportResponse(r)
}

package listing

import (
	"strings"
	"time"

	"vaga-hub/internal/domain/scoring"
)

// Job is the view of a posting the in-memory pipeline filters and orders.
// OriginalIndex points back to the caller's source slice.
type Job struct {
	OriginalIndex int
	Title         string
	Company       string
	Location      string
	Level         string
	Type          string
	CountryCode   string
	Details       string
	Tags          []string
	Salary        *int64
	Posted        time.Time
}

// Criteria is one saved or ad-hoc filter. Zero values ("", "all", empty
// slices, zero salary range) make the corresponding predicate match
// everything, so the zero Criteria passes the full list through untouched.
type Criteria struct {
	Search       string   `json:"search"`
	Location     string   `json:"location"`
	Experience   string   `json:"experience"`
	ContractType string   `json:"contract_type"`
	SalaryMin    int64    `json:"salary_min"`
	SalaryMax    int64    `json:"salary_max"`
	Tags         []string `json:"tags"`
	DatePosted   string   `json:"date_posted"`
	Country      string   `json:"country"`
	CountryCode  string   `json:"country_code"`
	Company      string   `json:"company"`
	Benefits     []string `json:"benefits"`
}

const (
	DateAll    = "all"
	DateWeek   = "7d"
	DateMonth  = "30d"
	matchAll   = "all"
	remoteOnly = "remote"
)

// Filter returns the subset of jobs satisfying every predicate of c. The
// input order is preserved.
func Filter(jobs []Job, c Criteria, now time.Time) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if matches(j, c, now) {
			out = append(out, j)
		}
	}
	return out
}

func matches(j Job, c Criteria, now time.Time) bool {
	return matchesSearch(j, c.Search) &&
		matchesLocation(j, c.Location) &&
		matchesExperience(j, c.Experience) &&
		matchesContractType(j, c.ContractType) &&
		matchesSalary(j, c.SalaryMin, c.SalaryMax) &&
		matchesTags(j, c.Tags) &&
		matchesDatePosted(j, c.DatePosted, now) &&
		matchesCountry(j, c.Country, c.CountryCode) &&
		matchesCompany(j, c.Company) &&
		matchesBenefits(j, c.Benefits)
}

func matchesSearch(j Job, search string) bool {
	search = fold(search)
	if search == "" {
		return true
	}
	return strings.Contains(fold(j.Title), search) || strings.Contains(fold(j.Company), search)
}

func matchesLocation(j Job, location string) bool {
	location = fold(location)
	if location == "" || location == matchAll {
		return true
	}
	return strings.Contains(fold(j.Location), location)
}

func matchesExperience(j Job, experience string) bool {
	level := fold(j.Level)
	switch fold(experience) {
	case "", matchAll:
		return true
	case "junior":
		return strings.Contains(level, "júnior")
	case "mid":
		return strings.Contains(level, "pleno")
	case "senior":
		return strings.Contains(level, "sênior")
	default:
		return true
	}
}

func matchesContractType(j Job, contractType string) bool {
	typ := fold(j.Type)
	switch fold(contractType) {
	case "", matchAll:
		return true
	case "full":
		return strings.Contains(typ, "tempo integral")
	case "part":
		return strings.Contains(typ, "meio período")
	case "contract":
		return strings.Contains(typ, "contrato")
	default:
		return true
	}
}

// Absent salary means "a combinar" and always passes. A zero range disables
// the predicate.
func matchesSalary(j Job, min, max int64) bool {
	if max <= 0 {
		return true
	}
	if j.Salary == nil {
		return true
	}
	return *j.Salary >= min && *j.Salary <= max
}

func matchesTags(j Job, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	title := fold(j.Title)
	company := fold(j.Company)
	for _, tag := range tags {
		tag = fold(tag)
		if tag == "" {
			continue
		}
		if strings.Contains(title, tag) || strings.Contains(company, tag) {
			return true
		}
	}
	return false
}

func matchesDatePosted(j Job, bucket string, now time.Time) bool {
	switch fold(bucket) {
	case DateWeek:
		return scoring.WholeDaysBetween(now, j.Posted) <= 7
	case DateMonth:
		return scoring.WholeDaysBetween(now, j.Posted) <= 30
	default:
		return true
	}
}

func matchesCountry(j Job, country, countryCode string) bool {
	country = fold(country)
	switch country {
	case "", matchAll:
		return true
	case remoteOnly:
		return strings.Contains(fold(j.Location), "remoto")
	}
	if strings.Contains(fold(j.Location), country) {
		return true
	}
	return j.CountryCode != "" && strings.EqualFold(j.CountryCode, countryCode)
}

func matchesCompany(j Job, company string) bool {
	if strings.TrimSpace(company) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(j.Company), strings.TrimSpace(company))
}

func matchesBenefits(j Job, benefits []string) bool {
	if len(benefits) == 0 {
		return true
	}
	details := fold(j.Details)
	for _, b := range benefits {
		b = fold(b)
		if b == "" {
			continue
		}
		if strings.Contains(details, b) {
			return true
		}
	}
	return false
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

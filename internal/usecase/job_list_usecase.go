package usecase

import (
	"context"
	"log"
	"time"

	"vaga-hub/internal/domain/job"
	"vaga-hub/internal/domain/listing"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

type JobListParams struct {
	Criteria listing.Criteria
	Sort     listing.SortOption
	Page     int
	PerPage  int
}

// JobSummary is one card on a listing page. Salary stays nil for "a
// combinar" postings so the presentation layer decides the wording.
type JobSummary struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Logo        string    `json:"logo"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Salary      *int64    `json:"salary"`
	Type        string    `json:"type"`
	Level       string    `json:"level"`
	Posted      time.Time `json:"posted"`
	Tags        []string  `json:"tags"`
	CountryCode string    `json:"country_code"`
	IsSponsored bool      `json:"is_sponsored"`
}

type JobListResult struct {
	Jobs       []JobSummary `json:"jobs"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	TotalPages int          `json:"total_pages"`
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) (JobListResult, error)
}

type JobList struct {
	jobs   repository.JobRepository
	cache  SearchCache
	ttl    time.Duration
	logger *log.Logger
	now    func() time.Time
}

func NewJobListUsecase(jobs repository.JobRepository, cache SearchCache, ttl time.Duration, logger *log.Logger) *JobList {
	return &JobList{jobs: jobs, cache: cache, ttl: ttl, logger: logger, now: time.Now}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) (JobListResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = listing.DefaultPageSize
	}
	if perPage > 50 {
		return JobListResult{}, ErrInvalidInput
	}

	cacheKey := ListingsCacheKey(params.Criteria, params.Sort, page, perPage)
	lockKey := ListingsLockKey(cacheKey)

	if u.cache != nil {
		var cached JobListResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Listings] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Listings] Cache MISS: %s", cacheKey)
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			// Another request is computing this exact page. Wait briefly
			// with jitter and retry the cache once before doing the work
			// ourselves.
			jitterMs := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitterMs)

			var cached JobListResult
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				if u.logger != nil {
					u.logger.Printf("[Listings] Cache HIT after lock wait: %s", cacheKey)
				}
				return cached, nil
			}
		}
	}

	all, err := u.jobs.ListAll(ctx)
	if err != nil {
		return JobListResult{}, ErrInternal
	}

	now := u.now()
	views := make([]listing.Job, 0, len(all))
	for i, j := range all {
		views = append(views, toListingJob(i, j))
	}

	filtered := listing.Filter(views, params.Criteria, now)
	ordered := listing.Sort(filtered, params.Sort)
	pageJobs := listing.Paginate(ordered, page, perPage)

	out := JobListResult{
		Jobs:       make([]JobSummary, 0, len(pageJobs)),
		Total:      len(filtered),
		Page:       page,
		PerPage:    perPage,
		TotalPages: listing.TotalPages(len(filtered), perPage),
	}
	for _, v := range pageJobs {
		idx := v.OriginalIndex
		if idx < 0 || idx >= len(all) {
			continue
		}
		out.Jobs = append(out.Jobs, toJobSummary(all[idx]))
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, u.ttl)
		if u.logger != nil {
			u.logger.Printf("[Listings] Cache SET: %s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

func toListingJob(idx int, j job.Job) listing.Job {
	return listing.Job{
		OriginalIndex: idx,
		Title:         j.Title,
		Company:       j.Company,
		Location:      j.Location,
		Level:         j.Level,
		Type:          j.Type,
		CountryCode:   j.CountryCode,
		Details:       j.Details,
		Tags:          j.Tags,
		Salary:        j.Salary,
		Posted:        j.Posted,
	}
}

func toJobSummary(j job.Job) JobSummary {
	return JobSummary{
		ID:          j.ID,
		Company:     j.Company,
		Logo:        j.Logo,
		Title:       j.Title,
		Location:    j.Location,
		Salary:      j.Salary,
		Type:        j.Type,
		Level:       j.Level,
		Posted:      j.Posted,
		Tags:        j.Tags,
		CountryCode: j.CountryCode,
		IsSponsored: j.IsSponsored,
	}
}

package listing

import (
	"testing"
	"time"
)

func int64p(v int64) *int64 { return &v }

func sampleJobs(now time.Time) []Job {
	return []Job{
		{
			OriginalIndex: 0,
			Title:         "Desenvolvedor Backend Pleno",
			Company:       "Acme",
			Location:      "Remoto - Todo Brasil",
			Level:         "Pleno",
			Type:          "Tempo Integral",
			CountryCode:   "BR",
			Details:       "Vale refeição, plano de saúde",
			Tags:          []string{"backend"},
			Salary:        int64p(8000),
			Posted:        now.AddDate(0, 0, -2),
		},
		{
			OriginalIndex: 1,
			Title:         "Designer UI/UX",
			Company:       "Beta Studio",
			Location:      "São Paulo",
			Level:         "Sênior",
			Type:          "Contrato",
			CountryCode:   "BR",
			Details:       "Horário flexível",
			Salary:        int64p(500),
			Posted:        now.AddDate(0, 0, -20),
		},
		{
			OriginalIndex: 2,
			Title:         "Desenvolvedor Frontend Júnior",
			Company:       "Acme",
			Location:      "Remoto",
			Level:         "Júnior",
			Type:          "Meio Período",
			CountryCode:   "PT",
			Details:       "",
			Salary:        nil,
			Posted:        now.AddDate(0, 0, -40),
		},
	}
}

func TestFilter_EmptyCriteriaKeepsAllInOrder(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Filter(jobs, Criteria{}, now)
	if len(got) != len(jobs) {
		t.Fatalf("expected all %d jobs, got %d", len(jobs), len(got))
	}
	for i, j := range got {
		if j.OriginalIndex != i {
			t.Fatalf("expected original order, got %v at %d", j.OriginalIndex, i)
		}
	}
}

func TestFilter_SearchTitleOrCompany(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Filter(jobs, Criteria{Search: "acme"}, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 Acme jobs, got %d", len(got))
	}

	got = Filter(jobs, Criteria{Search: "designer"}, now)
	if len(got) != 1 || got[0].OriginalIndex != 1 {
		t.Fatalf("expected the designer job, got %v", got)
	}
}

func TestFilter_SalaryRange(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Filter(jobs, Criteria{SalaryMin: 1000, SalaryMax: 30000}, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(got))
	}
	for _, j := range got {
		if j.OriginalIndex == 1 {
			t.Fatalf("job with salary 500 must be excluded")
		}
	}
	// The nil-salary job passes the range filter.
	found := false
	for _, j := range got {
		if j.OriginalIndex == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("negotiable-salary job must be included")
	}
}

func TestFilter_ExperienceAndContract(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Filter(jobs, Criteria{Experience: "junior"}, now)
	if len(got) != 1 || got[0].OriginalIndex != 2 {
		t.Fatalf("expected júnior job only, got %v", got)
	}

	got = Filter(jobs, Criteria{ContractType: "full"}, now)
	if len(got) != 1 || got[0].OriginalIndex != 0 {
		t.Fatalf("expected tempo-integral job only, got %v", got)
	}
}

func TestFilter_DatePostedBuckets(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Filter(jobs, Criteria{DatePosted: DateWeek}, now)
	if len(got) != 1 || got[0].OriginalIndex != 0 {
		t.Fatalf("expected only the 2-day-old job, got %v", got)
	}

	got = Filter(jobs, Criteria{DatePosted: DateMonth}, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 jobs within 30 days, got %d", len(got))
	}
}

func TestFilter_TagsMatchTitleOrCompany(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Filter(jobs, Criteria{Tags: []string{"backend", "beta"}}, now)
	if len(got) != 2 {
		t.Fatalf("expected backend + beta matches, got %d", len(got))
	}
}

func TestFilter_CountryAndCompany(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Filter(jobs, Criteria{Country: "remote"}, now)
	if len(got) != 2 {
		t.Fatalf("expected the 2 remote jobs, got %d", len(got))
	}

	got = Filter(jobs, Criteria{Country: "portugal", CountryCode: "PT"}, now)
	if len(got) != 1 || got[0].OriginalIndex != 2 {
		t.Fatalf("expected the PT job via country code, got %v", got)
	}

	got = Filter(jobs, Criteria{Company: "ACME"}, now)
	if len(got) != 2 {
		t.Fatalf("expected exact case-insensitive company match, got %d", len(got))
	}
}

func TestFilter_Benefits(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Filter(jobs, Criteria{Benefits: []string{"plano de saúde"}}, now)
	if len(got) != 1 || got[0].OriginalIndex != 0 {
		t.Fatalf("expected the job whose details mention the benefit, got %v", got)
	}
}

func TestSort_Salary(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Sort(jobs, SortHighSalary)
	if got[0].OriginalIndex != 0 || got[2].OriginalIndex != 2 {
		t.Fatalf("expected 8000, 500, nil order, got %v %v %v",
			got[0].OriginalIndex, got[1].OriginalIndex, got[2].OriginalIndex)
	}

	got = Sort(jobs, SortLowSalary)
	if got[0].OriginalIndex != 2 {
		t.Fatalf("expected negotiable salary treated as 0 first, got %v", got[0].OriginalIndex)
	}
}

func TestSort_RecentAndOldest(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	got := Sort(jobs, SortRecent)
	if got[0].OriginalIndex != 0 || got[2].OriginalIndex != 2 {
		t.Fatalf("unexpected recent order: %v %v %v",
			got[0].OriginalIndex, got[1].OriginalIndex, got[2].OriginalIndex)
	}

	got = Sort(jobs, SortOldest)
	if got[0].OriginalIndex != 2 {
		t.Fatalf("expected oldest first, got %v", got[0].OriginalIndex)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	jobs := sampleJobs(now)

	_ = Sort(jobs, SortOldest)
	for i, j := range jobs {
		if j.OriginalIndex != i {
			t.Fatalf("input slice mutated")
		}
	}
}

func TestPaginate(t *testing.T) {
	jobs := make([]Job, 14)
	for i := range jobs {
		jobs[i] = Job{OriginalIndex: i}
	}

	page := Paginate(jobs, 1, 0)
	if len(page) != DefaultPageSize || page[0].OriginalIndex != 0 {
		t.Fatalf("unexpected first page: %v", page)
	}

	page = Paginate(jobs, 3, 6)
	if len(page) != 2 || page[0].OriginalIndex != 12 {
		t.Fatalf("unexpected last page: %v", page)
	}

	page = Paginate(jobs, 9, 6)
	if len(page) != 0 {
		t.Fatalf("expected empty out-of-range page, got %v", page)
	}

	if got := TotalPages(14, 6); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
}

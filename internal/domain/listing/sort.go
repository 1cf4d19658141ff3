package listing

import "sort"

type SortOption string

const (
	SortRecent     SortOption = "recent"
	SortOldest     SortOption = "oldest"
	SortHighSalary SortOption = "highSalary"
	SortLowSalary  SortOption = "lowSalary"
)

// Sort returns a new slice ordered by the given option. Unknown options
// leave the input order untouched. An absent salary sorts as 0.
func Sort(jobs []Job, by SortOption) []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)

	switch by {
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Posted.After(out[j].Posted)
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Posted.Before(out[j].Posted)
		})
	case SortHighSalary:
		sort.SliceStable(out, func(i, j int) bool {
			return salaryOrZero(out[i]) > salaryOrZero(out[j])
		})
	case SortLowSalary:
		sort.SliceStable(out, func(i, j int) bool {
			return salaryOrZero(out[i]) < salaryOrZero(out[j])
		})
	}
	return out
}

func salaryOrZero(j Job) int64 {
	if j.Salary == nil {
		return 0
	}
	return *j.Salary
}

const DefaultPageSize = 6

// Paginate slices the list into fixed-size pages. Pages are 1-based; an
// out-of-range page yields an empty slice.
func Paginate(jobs []Job, page, perPage int) []Job {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	if start >= len(jobs) {
		return []Job{}
	}
	end := start + perPage
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}

// TotalPages reports how many pages a list of n jobs spans.
func TotalPages(n, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

package scoring

import (
	"log"
	"math"
	"sort"
	"strings"
	"time"
)

// Profile is the slice of career data the relevance ranker reads. Callers
// map their persistence shapes into it.
type Profile struct {
	Skills          []Skill
	Experience      []Experience
	DesiredPosition string
	Location        string
}

// Job carries the posting fields relevance scoring looks at plus the
// caller's original index, so ranked output can be mapped back to source
// rows without re-identification.
type Job struct {
	OriginalIndex int
	Title         string
	Location      string
	Level         string
	Requirements  []string
	Posted        time.Time
}

const (
	pointsPerMatchingSkill = 10
	pointsLevelMatch       = 30
	pointsDesiredPosition  = 20
	pointsLocationMatch    = 15
	pointsRecentPosting    = 10

	recentWindowDays = 7

	DefaultRecommendLimit = 9
)

// Relevance computes the additive ranking integer for one job against a
// profile. It is used for ordering only and is never shown as a percentage.
func Relevance(p Profile, j Job, now time.Time) int {
	score := 0

	reqs := make([]string, 0, len(j.Requirements))
	for _, r := range j.Requirements {
		reqs = append(reqs, normalize(r))
	}

	for _, s := range p.Skills {
		skill := normalize(s.Name)
		if skill == "" {
			continue
		}
		for _, req := range reqs {
			if req == "" {
				continue
			}
			if strings.Contains(req, skill) || strings.Contains(skill, req) {
				score += pointsPerMatchingSkill
				break
			}
		}
	}

	if len(p.Experience) > 0 {
		level := normalize(p.Experience[0].Level)
		if level != "" && strings.Contains(normalize(j.Level), level) {
			score += pointsLevelMatch
		}
	}

	if desired := normalize(p.DesiredPosition); desired != "" {
		if strings.Contains(normalize(j.Title), desired) {
			score += pointsDesiredPosition
		}
	}

	if loc := normalize(p.Location); loc != "" && normalize(j.Location) != "" {
		if strings.Contains(normalize(j.Location), loc) {
			score += pointsLocationMatch
		}
	}

	if !j.Posted.IsZero() && WholeDaysBetween(now, j.Posted) <= recentWindowDays {
		score += pointsRecentPosting
	}

	return score
}

// WholeDaysBetween is the absolute difference between two instants in whole
// days, ceiling-rounded, matching the date bucket rule used by listing
// filters.
func WholeDaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// Recommend scores every candidate, orders them by descending relevance and
// truncates to limit (DefaultRecommendLimit when limit <= 0). A failure
// scoring a single job degrades that job to relevance 0 and never aborts
// the batch.
func Recommend(p Profile, jobs []Job, limit int, now time.Time, logger *log.Logger) []Job {
	if len(jobs) == 0 {
		return jobs
	}
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	type scored struct {
		job   Job
		score int
	}
	out := make([]scored, 0, len(jobs))
	for _, j := range jobs {
		s, ok := safeRelevance(p, j, now)
		if !ok && logger != nil {
			logger.Printf("[Recommend] scoring failed, degraded to 0 | original_index=%d", j.OriginalIndex)
		}
		out = append(out, scored{job: j, score: s})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score > out[j].score
	})

	if len(out) > limit {
		out = out[:limit]
	}

	ranked := make([]Job, 0, len(out))
	for _, it := range out {
		ranked = append(ranked, it.job)
	}
	return ranked
}

func safeRelevance(p Profile, j Job, now time.Time) (score int, ok bool) {
	ok = true
	defer func() {
		if r := recover(); r != nil {
			score = 0
			ok = false
		}
	}()
	return Relevance(p, j, now), true
}

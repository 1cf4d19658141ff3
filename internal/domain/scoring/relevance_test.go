package scoring

import (
	"testing"
	"time"
)

func baseProfile() Profile {
	return Profile{
		Skills:          []Skill{{Name: "JavaScript", Level: 50}, {Name: "React", Level: 50}},
		Experience:      []Experience{{Position: "Desenvolvedor Frontend", Level: "Pleno"}},
		DesiredPosition: "Desenvolvedor Backend",
		Location:        "São Paulo",
	}
}

func TestRelevance_SkillPoints(t *testing.T) {
	now := time.Now()
	p := Profile{Skills: []Skill{{Name: "JavaScript"}, {Name: "React"}, {Name: "Rust"}}}
	j := Job{
		Title:        "Dev",
		Requirements: []string{"javascript", "react.js"},
		Posted:       now.AddDate(0, -2, 0),
	}

	// javascript and react both substring-match; rust matches nothing.
	if got := Relevance(p, j, now); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
}

func TestRelevance_LevelBonus(t *testing.T) {
	now := time.Now()
	p := Profile{Experience: []Experience{{Position: "Dev", Level: "Pleno"}}}
	j := Job{Level: "Pleno/Sênior", Posted: now.AddDate(0, -2, 0)}

	if got := Relevance(p, j, now); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestRelevance_DesiredPositionBonus(t *testing.T) {
	now := time.Now()
	p := Profile{DesiredPosition: "Desenvolvedor Backend"}
	j := Job{Title: "Desenvolvedor Backend Sênior", Posted: now.AddDate(0, -2, 0)}

	if got := Relevance(p, j, now); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
}

func TestRelevance_LocationBonus(t *testing.T) {
	now := time.Now()
	p := Profile{Location: "São Paulo"}
	j := Job{Location: "Remoto - São Paulo, Brasil", Posted: now.AddDate(0, -2, 0)}

	if got := Relevance(p, j, now); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
}

func TestRelevance_RecencyBonus(t *testing.T) {
	now := time.Now()

	recent := Job{Posted: now.AddDate(0, 0, -3)}
	if got := Relevance(Profile{}, recent, now); got != 10 {
		t.Fatalf("expected +10 for 3-day-old posting, got %d", got)
	}

	stale := Job{Posted: now.AddDate(0, 0, -10)}
	if got := Relevance(Profile{}, stale, now); got != 0 {
		t.Fatalf("expected no bonus for 10-day-old posting, got %d", got)
	}
}

func TestRelevance_ZeroPostedIsFinite(t *testing.T) {
	got := Relevance(baseProfile(), Job{Title: "x"}, time.Now())
	if got < 0 {
		t.Fatalf("relevance must be non-negative, got %d", got)
	}
}

func TestRelevance_Idempotent(t *testing.T) {
	now := time.Now()
	p := baseProfile()
	j := Job{
		Title:        "Desenvolvedor Backend Pleno",
		Location:     "São Paulo",
		Level:        "Pleno",
		Requirements: []string{"javascript", "node"},
		Posted:       now.AddDate(0, 0, -1),
	}
	if a, b := Relevance(p, j, now), Relevance(p, j, now); a != b {
		t.Fatalf("expected identical scores, got %d vs %d", a, b)
	}
}

func TestRecommend_OrdersAndTruncates(t *testing.T) {
	now := time.Now()
	p := Profile{DesiredPosition: "Backend"}

	jobs := []Job{
		{OriginalIndex: 0, Title: "Designer", Posted: now.AddDate(0, -2, 0)},
		{OriginalIndex: 1, Title: "Backend Dev", Posted: now.AddDate(0, -2, 0)},
		{OriginalIndex: 2, Title: "Backend Dev", Posted: now.AddDate(0, 0, -1)},
	}

	ranked := Recommend(p, jobs, 2, now, nil)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].OriginalIndex != 2 {
		t.Fatalf("expected freshest backend job first, got index %d", ranked[0].OriginalIndex)
	}
	if ranked[1].OriginalIndex != 1 {
		t.Fatalf("expected older backend job second, got index %d", ranked[1].OriginalIndex)
	}
}

func TestRecommend_DefaultLimit(t *testing.T) {
	now := time.Now()
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = Job{OriginalIndex: i, Posted: now}
	}

	ranked := Recommend(Profile{}, jobs, 0, now, nil)
	if len(ranked) != DefaultRecommendLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultRecommendLimit, len(ranked))
	}
}

func TestRecommend_StableForTies(t *testing.T) {
	now := time.Now()
	jobs := []Job{
		{OriginalIndex: 0, Posted: now},
		{OriginalIndex: 1, Posted: now},
		{OriginalIndex: 2, Posted: now},
	}
	ranked := Recommend(Profile{}, jobs, 3, now, nil)
	for i, j := range ranked {
		if j.OriginalIndex != i {
			t.Fatalf("expected input order preserved for ties, got %v", ranked)
		}
	}
}

func TestWholeDaysBetween(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if d := WholeDaysBetween(now, now.Add(-time.Hour)); d != 1 {
		t.Fatalf("expected 1 whole day for 1h difference, got %d", d)
	}
	if d := WholeDaysBetween(now, now.AddDate(0, 0, -7)); d != 7 {
		t.Fatalf("expected 7, got %d", d)
	}
	if d := WholeDaysBetween(now, now); d != 0 {
		t.Fatalf("expected 0, got %d", d)
	}
}

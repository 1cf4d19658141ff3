package session

import (
	"testing"
	"time"
)

func TestNeedsReset(t *testing.T) {
	today := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	if NeedsReset(Day(today), today) {
		t.Fatalf("same day must not reset")
	}
	if !NeedsReset("2026-08-30", today) {
		t.Fatalf("previous day must reset")
	}
	if !NeedsReset("", today) {
		t.Fatalf("unset last-reset must reset")
	}
}

func TestNormalized(t *testing.T) {
	today := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)

	stale := Counters{Search: 4, View: 10, LastReset: "2026-08-30"}
	got := stale.Normalized(today)
	if got.Search != 0 || got.View != 0 {
		t.Fatalf("expected zeroed counters, got %+v", got)
	}
	if got.LastReset != "2026-08-31" {
		t.Fatalf("expected last reset stamped today, got %q", got.LastReset)
	}

	fresh := Counters{Search: 2, View: 3, LastReset: Day(today)}
	if got := fresh.Normalized(today); got != fresh {
		t.Fatalf("same-day counters must be untouched, got %+v", got)
	}
}

func TestSearchLimitReached(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	c := Counters{Search: AnonymousSearchLimit, LastReset: Day(today)}
	if !c.SearchLimitReached(false, today) {
		t.Fatalf("anonymous visitor at the limit must be blocked")
	}
	if c.SearchLimitReached(true, today) {
		t.Fatalf("authenticated users are never limited")
	}

	// The limit resets with the day.
	stale := Counters{Search: AnonymousSearchLimit, LastReset: "2026-08-30"}
	if stale.SearchLimitReached(false, today) {
		t.Fatalf("counters from a previous day must not block")
	}
}

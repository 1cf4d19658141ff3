package session

import "time"

// Counters tracks the anonymous search/view quota. LastReset is the day the
// counters were last zeroed, in DayFormat. The daily reset is a pure
// function of (lastReset, today) so it can be applied anywhere the counters
// are read, with no ambient state.
type Counters struct {
	Search    int    `json:"search"`
	View      int    `json:"view"`
	LastReset string `json:"last_reset"`
}

const (
	DayFormat = "2006-01-02"

	// AnonymousSearchLimit is how many searches an unauthenticated visitor
	// gets per day before being prompted to sign up.
	AnonymousSearchLimit = 5
)

func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

func NeedsReset(lastReset string, today time.Time) bool {
	return lastReset != Day(today)
}

// Normalized applies the daily reset rule and returns the effective
// counters for today. The receiver is never mutated.
func (c Counters) Normalized(today time.Time) Counters {
	if NeedsReset(c.LastReset, today) {
		return Counters{LastReset: Day(today)}
	}
	return c
}

func (c Counters) SearchLimitReached(authenticated bool, today time.Time) bool {
	if authenticated {
		return false
	}
	return c.Normalized(today).Search >= AnonymousSearchLimit
}

package usecase

import (
	"context"
	"strings"
	"time"

	"vaga-hub/internal/domain/session"
)

// Session counters live only in the cache. Losing them on a Redis restart
// just resets the daily limits, which is acceptable.
const sessionTTL = 48 * time.Hour

type SessionUsecase interface {
	GetCounters(ctx context.Context, clientID string) (session.Counters, error)
	RecordSearch(ctx context.Context, clientID string, authenticated bool) (session.Counters, error)
	RecordView(ctx context.Context, clientID string) (session.Counters, error)
}

type Sessions struct {
	cache SearchCache
	now   func() time.Time
}

func NewSessionUsecase(cache SearchCache) *Sessions {
	return &Sessions{cache: cache, now: time.Now}
}

func (u *Sessions) GetCounters(ctx context.Context, clientID string) (session.Counters, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return session.Counters{}, ErrInvalidInput
	}
	c, err := u.load(ctx, clientID)
	if err != nil {
		return session.Counters{}, err
	}
	return c.Normalized(u.now()), nil
}

// RecordSearch counts one search against the session. Anonymous sessions
// are refused once the daily limit is hit; signed-in users are never
// limited.
func (u *Sessions) RecordSearch(ctx context.Context, clientID string, authenticated bool) (session.Counters, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return session.Counters{}, ErrInvalidInput
	}

	now := u.now()
	c, err := u.load(ctx, clientID)
	if err != nil {
		return session.Counters{}, err
	}
	c = c.Normalized(now)

	if c.SearchLimitReached(authenticated, now) {
		return c, ErrSearchLimitReached
	}

	c.Search++
	u.store(ctx, clientID, c)
	return c, nil
}

func (u *Sessions) RecordView(ctx context.Context, clientID string) (session.Counters, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return session.Counters{}, ErrInvalidInput
	}

	c, err := u.load(ctx, clientID)
	if err != nil {
		return session.Counters{}, err
	}
	c = c.Normalized(u.now())
	c.View++
	u.store(ctx, clientID, c)
	return c, nil
}

func (u *Sessions) load(ctx context.Context, clientID string) (session.Counters, error) {
	var c session.Counters
	if u.cache == nil {
		return c, nil
	}
	if _, err := u.cache.GetJSON(ctx, SessionCacheKey(clientID), &c); err != nil {
		return session.Counters{}, ErrInternal
	}
	return c, nil
}

func (u *Sessions) store(ctx context.Context, clientID string, c session.Counters) {
	if u.cache == nil {
		return
	}
	_ = u.cache.SetJSON(ctx, SessionCacheKey(clientID), c, sessionTTL)
}

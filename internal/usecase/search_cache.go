package usecase

import (
	"context"
	"time"
)

// SearchCache is the slice of the Redis wrapper the usecases depend on. A
// degraded cache returns misses instead of errors, so every caller treats a
// cache failure as "compute it again".
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

package usecase

import (
	"context"
	"time"
)

// RecommendationCache sits outside the pure scoring core: a missing or
// failing cache only costs a recomputation.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

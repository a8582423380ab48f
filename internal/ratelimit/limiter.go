package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"reward-platform/internal/clients/redis"
	"reward-platform/internal/observability"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	window          = time.Minute
	janitorInterval = time.Minute
)

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// windowStore is the sliding window backend, satisfied by *redis.Client
type windowStore interface {
	RecordInWindow(ctx context.Context, key, member string, now time.Time, window time.Duration) (int64, time.Time, error)
	ZRem(ctx context.Context, key string, members ...interface{}) error
}

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter enforces a per-caller request budget over a one minute sliding window.
// Redis is used when configured so that gateway replicas share the budget;
// otherwise, or when Redis fails, each caller gets an in-process token bucket.
type Limiter struct {
	redis  windowStore
	limit  int
	logger *observability.Logger
	now    func() time.Time

	mu    sync.Mutex
	local map[string]*localEntry
}

// NewLimiter creates a limiter allowing requestsPerMinute per caller. redisClient may be nil.
func NewLimiter(redisClient *redis.Client, requestsPerMinute int, logger *observability.Logger) *Limiter {
	if requestsPerMinute < 1 {
		requestsPerMinute = 1
	}
	l := &Limiter{
		limit:  requestsPerMinute,
		logger: logger,
		now:    time.Now,
		local:  make(map[string]*localEntry),
	}
	if redisClient.IsEnabled() {
		l.redis = redisClient
	}
	return l
}

// Allow records one request for key and reports whether it fits the budget
func (l *Limiter) Allow(ctx context.Context, key string) Result {
	now := l.now()
	if l.redis != nil {
		result, err := l.allowRedis(ctx, key, now)
		if err == nil {
			return result
		}
		l.logger.WarnWithError(ctx, "Redis rate limit check failed, falling back to local limiter", err)
	}
	return l.allowLocal(key, now)
}

func (l *Limiter) allowRedis(ctx context.Context, key string, now time.Time) (Result, error) {
	redisKey := fmt.Sprintf("rl:%s", key)
	member := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())

	count, oldest, err := l.redis.RecordInWindow(ctx, redisKey, member, now, window)
	if err != nil {
		return Result{}, err
	}

	resetAt := oldest.Add(window)
	if int(count) > l.limit {
		// Rejected requests do not consume the budget
		if err := l.redis.ZRem(ctx, redisKey, member); err != nil {
			l.logger.WarnWithError(ctx, "failed to remove rejected request from window", err)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{Allowed: false, Limit: l.limit, ResetAt: resetAt, RetryAfter: retryAfter}, nil
	}

	return Result{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - int(count),
		ResetAt:   resetAt,
	}, nil
}

func (l *Limiter) allowLocal(key string, now time.Time) Result {
	l.mu.Lock()
	entry, ok := l.local[key]
	if !ok {
		entry = &localEntry{limiter: rate.NewLimiter(rate.Every(window/time.Duration(l.limit)), l.limit)}
		l.local[key] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	reservation := entry.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Result{Allowed: false, Limit: l.limit, ResetAt: now.Add(delay), RetryAfter: delay}
	}

	remaining := int(entry.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	missing := float64(l.limit) - entry.limiter.TokensAt(now)
	resetAt := now.Add(time.Duration(missing * float64(window) / float64(l.limit)))
	return Result{Allowed: true, Limit: l.limit, Remaining: remaining, ResetAt: resetAt}
}

// Run evicts idle local limiters until ctx is cancelled
func (l *Limiter) Run(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictIdle(l.now())
		}
	}
}

func (l *Limiter) evictIdle(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, entry := range l.local {
		if now.Sub(entry.lastSeen) > window {
			delete(l.local, key)
			evicted++
		}
	}
	return evicted
}

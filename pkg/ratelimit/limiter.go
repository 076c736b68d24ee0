package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LimiterStore hands out one token bucket per key (chat, user, client).
type LimiterStore struct {
	limiters map[string]*entry
	mu       sync.Mutex
	r        rate.Limit
	burst    int
	now      func() time.Time
}

func NewLimiterStore(r rate.Limit, burst int) *LimiterStore {
	return &LimiterStore{
		limiters: make(map[string]*entry),
		r:        r,
		burst:    burst,
		now:      time.Now,
	}
}

func (s *LimiterStore) GetLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, exists := s.limiters[key]; exists {
		e.lastAccess = s.now()
		return e.limiter
	}
	limiter := rate.NewLimiter(s.r, s.burst)
	s.limiters[key] = &entry{limiter: limiter, lastAccess: s.now()}
	return limiter
}

// Allow reports whether key may proceed now without waiting.
func (s *LimiterStore) Allow(key string) bool {
	return s.GetLimiter(key).Allow()
}

// Wait blocks until key may proceed or ctx is done.
func (s *LimiterStore) Wait(ctx context.Context, key string) error {
	return s.GetLimiter(key).Wait(ctx)
}

// Prune drops limiters idle for longer than maxIdle and returns how many were removed.
func (s *LimiterStore) Prune(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for key, e := range s.limiters {
		if now.Sub(e.lastAccess) > maxIdle {
			delete(s.limiters, key)
			removed++
		}
	}
	return removed
}

func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyedLimiter hands out one token bucket per key (an account's identity).
type KeyedLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewKeyedLimiter allows perMinute events per key with the given burst.
// A non-positive perMinute disables limiting.
func NewKeyedLimiter(perMinute, burst int) *KeyedLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst <= 0 {
		burst = 1
	}
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// Allow reports whether key may proceed now, consuming a token if so.
func (m *KeyedLimiter) Allow(key string) bool {
	return m.getLimiter(key).Allow()
}

func (m *KeyedLimiter) getLimiter(key string) *rate.Limiter {
	m.mu.RLock()
	limiter, exists := m.limiters[key]
	m.mu.RUnlock()
	if exists {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double check to prevent race condition
	if limiter, exists = m.limiters[key]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(m.limit, m.burst)
	m.limiters[key] = limiter
	return limiter
}

// Remove drops the bucket for key.
func (m *KeyedLimiter) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.limiters, key)
}

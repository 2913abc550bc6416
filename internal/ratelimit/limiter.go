package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per client key (the caller's IP).
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewClientLimiter(config Config) *ClientLimiter {
	if config.RequestsPerSecond <= 0 {
		config = DefaultConfig()
	}
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func (l *ClientLimiter) GetLimiter(client string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[client]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[client]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[client] = limiter
	return limiter
}

// Allow reports whether the client may make a request right now.
func (l *ClientLimiter) Allow(client string) bool {
	return l.GetLimiter(client).Allow()
}

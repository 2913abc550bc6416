package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_BurstExhaustion(t *testing.T) {
	limiter := NewClientLimiter(Config{RequestsPerSecond: 1, BurstSize: 2})

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestClientLimiter_PerClientBuckets(t *testing.T) {
	limiter := NewClientLimiter(Config{RequestsPerSecond: 1, BurstSize: 1})

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// A different client has its own bucket.
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestClientLimiter_ZeroConfigFallsBack(t *testing.T) {
	limiter := NewClientLimiter(Config{})

	assert.Equal(t, DefaultConfig().RequestsPerSecond, limiter.defaults.RequestsPerSecond)
	assert.Equal(t, DefaultConfig().BurstSize, limiter.defaults.BurstSize)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestClientLimiter_ReusesLimiter(t *testing.T) {
	limiter := NewClientLimiter(Config{RequestsPerSecond: 5, BurstSize: 10})

	first := limiter.GetLimiter("10.0.0.1")
	second := limiter.GetLimiter("10.0.0.1")
	assert.Same(t, first, second)
}

package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alimony-calculator/config"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRateLimiter_Allow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(config.RateLimitConfig{Capacity: 3, Window: time.Minute}, clock.Now)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Buckets are per client.
	assert.True(t, rl.Allow("10.0.0.2"))

	clock.Advance(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(config.RateLimitConfig{Capacity: 1, Window: time.Minute}, clock.Now)

	rl.Allow("10.0.0.1")
	clock.Advance(2 * time.Hour)
	rl.Allow("10.0.0.2")

	rl.cleanup()

	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Capacity: 1, Window: time.Minute})
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRateLimiter_PartialWindowDoesNotRefill(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(config.RateLimitConfig{Capacity: 2, Window: time.Minute}, clock.Now)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))

	clock.Advance(59 * time.Second)
	assert.False(t, rl.Allow("10.0.0.1"))

	// A full window after the first request the bucket is full again.
	clock.Advance(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

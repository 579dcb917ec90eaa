package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(clock Clock) *LoginRateLimiter {
	return NewLoginRateLimiter(5, 15*time.Minute, 30*time.Minute, clock, zerolog.Nop())
}

func TestRateLimiter_ThresholdAndBlock(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for i, wantRemaining := range []int{4, 3, 2, 1, 0} {
		status := limiter.Check("writer@example.com")
		assert.True(t, status.Allowed, "attempt %d should be allowed", i+1)
		assert.False(t, status.Blocked)
		assert.Equal(t, wantRemaining, status.Remaining)
	}

	// The sixth attempt within the window is blocked for the full block
	// duration.
	status := limiter.Check("writer@example.com")
	assert.False(t, status.Allowed)
	assert.True(t, status.Blocked)
	assert.Equal(t, 0, status.Remaining)
	assert.Equal(t, 1800, status.ResetIn)
}

func TestRateLimiter_BlockReArmsOnEveryAttempt(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for i := 0; i < 6; i++ {
		limiter.Check("writer@example.com")
	}

	// 29 minutes into the block, another attempt pushes the reset out by
	// a full 30 minutes again.
	clock.Advance(29 * time.Minute)
	status := limiter.Check("writer@example.com")
	assert.True(t, status.Blocked)
	assert.Equal(t, 1800, status.ResetIn)

	// 29 more minutes later the re-armed block is still active.
	clock.Advance(29 * time.Minute)
	status = limiter.Check("writer@example.com")
	assert.True(t, status.Blocked)
}

func TestRateLimiter_WindowExpiryStartsFresh(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for i := 0; i < 5; i++ {
		limiter.Check("writer@example.com")
	}

	// No sixth attempt; once the window lapses the next attempt starts a
	// fresh count of 1.
	clock.Advance(15*time.Minute + time.Second)
	status := limiter.Check("writer@example.com")
	assert.True(t, status.Allowed)
	assert.Equal(t, 4, status.Remaining)
}

func TestRateLimiter_BlockExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for i := 0; i < 6; i++ {
		limiter.Check("writer@example.com")
	}

	clock.Advance(30*time.Minute + time.Second)
	status := limiter.Check("writer@example.com")
	assert.True(t, status.Allowed)
	assert.Equal(t, 4, status.Remaining)
}

func TestRateLimiter_ResetClearsState(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	for i := 0; i < 3; i++ {
		limiter.Check("writer@example.com")
	}

	limiter.Reset("writer@example.com")

	status := limiter.Check("writer@example.com")
	assert.True(t, status.Allowed)
	assert.Equal(t, 4, status.Remaining)
}

func TestRateLimiter_IdentifierNormalization(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	limiter.Check("  Writer@Example.COM ")
	status := limiter.Check("writer@example.com")
	assert.Equal(t, 3, status.Remaining)
}

func TestRateLimiter_SweepEvictsExpiredEntries(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newTestLimiter(clock)

	limiter.Check("a@example.com")
	limiter.Check("b@example.com")
	assert.Len(t, limiter.entries, 2)

	clock.Advance(16 * time.Minute)
	limiter.Check("c@example.com")
	limiter.sweep()

	assert.Len(t, limiter.entries, 1)
	_, ok := limiter.entries["c@example.com"]
	assert.True(t, ok)
}

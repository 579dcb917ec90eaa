package services

import (
	"strings"
	"sync"
	"time"

	"literary-cms/models"

	"github.com/rs/zerolog"
)

// Clock lets tests drive the limiter with a deterministic time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock implementation used in production.
func SystemClock() Clock { return systemClock{} }

type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// LoginRateLimiter counts login attempts per normalized email in a sliding
// window. Once the attempt threshold is reached within the window, the
// identifier is blocked and every further attempt re-arms the block.
type LoginRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry

	maxAttempts int
	window      time.Duration
	block       time.Duration

	clock Clock
	log   zerolog.Logger
	stop  chan struct{}
}

func NewLoginRateLimiter(maxAttempts int, window, block time.Duration, clock Clock, log zerolog.Logger) *LoginRateLimiter {
	return &LoginRateLimiter{
		entries:     make(map[string]*rateLimitEntry),
		maxAttempts: maxAttempts,
		window:      window,
		block:       block,
		clock:       clock,
		log:         log,
		stop:        make(chan struct{}),
	}
}

// NormalizeIdentifier lowercases and trims an email so counting is
// case-insensitive.
func NormalizeIdentifier(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Check records one attempt for the identifier and reports whether it may
// proceed.
func (l *LoginRateLimiter) Check(identifier string) models.RateLimitStatus {
	key := NormalizeIdentifier(identifier)
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok || !entry.resetAt.After(now) {
		// Fresh window: the expired entry (if any) is discarded.
		l.entries[key] = &rateLimitEntry{count: 1, resetAt: now.Add(l.window)}
		return models.RateLimitStatus{
			Allowed:   true,
			Remaining: l.maxAttempts - 1,
			ResetIn:   int(l.window.Seconds()),
		}
	}

	if entry.count >= l.maxAttempts {
		// Blocked. Every attempt while blocked pushes the reset out by
		// the full block duration.
		entry.resetAt = now.Add(l.block)
		return models.RateLimitStatus{
			Blocked: true,
			ResetIn: int(l.block.Seconds()),
		}
	}

	entry.count++
	return models.RateLimitStatus{
		Allowed:   true,
		Remaining: l.maxAttempts - entry.count,
		ResetIn:   int(entry.resetAt.Sub(now).Seconds()),
	}
}

// Reset clears the identifier's entry, e.g. after a successful login.
func (l *LoginRateLimiter) Reset(identifier string) {
	key := NormalizeIdentifier(identifier)

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

// StartSweeper evicts expired entries once per interval until Stop is
// called, bounding the map's memory.
func (l *LoginRateLimiter) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.sweep()
			case <-l.stop:
				return
			}
		}
	}()
}

func (l *LoginRateLimiter) Stop() {
	close(l.stop)
}

func (l *LoginRateLimiter) sweep() {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, entry := range l.entries {
		if !entry.resetAt.After(now) {
			delete(l.entries, key)
			removed++
		}
	}
	if removed > 0 {
		l.log.Debug().Int("removed", removed).Msg("rate limiter sweep")
	}
}

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/orderdesk/backend/internal/domain/billing"
)

// InMemorySummaryCache is a process-local summary cache with TTL.
// Suitable for single-instance deployments and tests.
type InMemorySummaryCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type inMemoryEntry struct {
	summary   billing.Summary
	expiresAt time.Time
}

// NewInMemorySummaryCache creates an in-memory summary cache
func NewInMemorySummaryCache(ttl time.Duration) *InMemorySummaryCache {
	return &InMemorySummaryCache{
		entries: make(map[string]inMemoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetClock overrides the time source
func (c *InMemorySummaryCache) SetClock(now func() time.Time) {
	c.now = now
}

// Get returns a cached summary if present and unexpired
func (c *InMemorySummaryCache) Get(_ context.Context, key string) (*billing.Summary, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	summary := entry.summary
	return &summary, true, nil
}

// Set stores a summary under the key
func (c *InMemorySummaryCache) Set(_ context.Context, key string, summary billing.Summary) error {
	c.mu.Lock()
	c.entries[key] = inMemoryEntry{summary: summary, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

// Invalidate drops all cached summaries
func (c *InMemorySummaryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]inMemoryEntry)
	c.mu.Unlock()
	return nil
}

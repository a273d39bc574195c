package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryDenylist is the single-process fallback used when no Redis address
// is configured.
type MemoryDenylist struct {
	mu           sync.Mutex
	entries      map[string]time.Time
	lastCleanup  time.Time
	cleanupEvery time.Duration
	now          func() time.Time
}

func NewMemory() *MemoryDenylist {
	return &MemoryDenylist{
		entries:      map[string]time.Time{},
		lastCleanup:  time.Now(),
		cleanupEvery: time.Minute,
		now:          time.Now,
	}
}

func (d *MemoryDenylist) Revoke(_ context.Context, jti string, until time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.cleanup(now)
	if until.After(now) {
		d.entries[jti] = until
	}
	return nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	until, ok := d.entries[jti]
	if !ok {
		return false, nil
	}
	if !d.now().Before(until) {
		delete(d.entries, jti)
		return false, nil
	}
	return true, nil
}

func (d *MemoryDenylist) cleanup(now time.Time) {
	if now.Sub(d.lastCleanup) < d.cleanupEvery {
		return
	}
	for k, until := range d.entries {
		if !now.Before(until) {
			delete(d.entries, k)
		}
	}
	d.lastCleanup = now
}

// Package usage records per-badge activity pings. The rapid-duplicate
// guard lives in an explicit Throttle value carried by the caller, not
// in package state, so the store layer stays testable in isolation.
package usage

import (
	"context"
	"strings"
	"time"

	"github.com/TheViking816/DescansosCPE/pkg/db"
)

// Throttle suppresses repeat pings for the same badge+section within
// the interval. Zero value allows everything once.
type Throttle struct {
	lastKey  string
	lastSent time.Time
	interval time.Duration
}

// NewThrottle creates a throttle with the given minimum interval
// between identical pings.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Allow reports whether a ping for key should go out now, and records
// it if so.
func (t *Throttle) Allow(key string, now time.Time) bool {
	if key == t.lastKey && now.Sub(t.lastSent) < t.interval {
		return false
	}
	t.lastKey = key
	t.lastSent = now
	return true
}

// Tracker writes activity pings through a throttle, skipping excluded
// badges entirely.
type Tracker struct {
	store    db.UsageStore
	throttle *Throttle
	excluded map[string]bool
}

// NewTracker creates a tracker. Excluded badge numbers are never
// recorded.
func NewTracker(store db.UsageStore, throttle *Throttle, excludedBadges []string) *Tracker {
	excluded := make(map[string]bool, len(excludedBadges))
	for _, b := range excludedBadges {
		excluded[strings.TrimSpace(b)] = true
	}
	return &Tracker{store: store, throttle: throttle, excluded: excluded}
}

// Record upserts a last-activity row for the badge unless the badge is
// excluded or the throttle suppresses it. Returns whether a write
// happened.
func (tr *Tracker) Record(ctx context.Context, badge, section string, now time.Time) (bool, error) {
	badge = strings.TrimSpace(badge)
	if badge == "" || tr.excluded[badge] {
		return false, nil
	}
	if !tr.throttle.Allow(badge+"|"+section, now) {
		return false, nil
	}

	err := tr.store.UpsertUsageActivity(ctx, db.UsageActivity{
		Badge:     badge,
		Section:   section,
		UpdatedAt: now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

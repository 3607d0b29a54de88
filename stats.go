package tally

import (
	"time"
)

// Stats represents history statistics.
type Stats struct {
	Calculations int            // Total number of history records
	PerOperation map[string]int // Record count per operation symbol
	OldestEntry  time.Duration  // Age of the oldest record
	NewestEntry  time.Duration  // Age of the newest record
}

// Stats returns statistics about the history.
func (c *Calculator) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{PerOperation: make(map[string]int)}
	var oldest, newest time.Time

	for _, rec := range c.history {
		stats.Calculations++
		stats.PerOperation[rec.Operation]++

		// Track oldest and newest
		if oldest.IsZero() || rec.Timestamp.Before(oldest) {
			oldest = rec.Timestamp
		}
		if newest.IsZero() || rec.Timestamp.After(newest) {
			newest = rec.Timestamp
		}
	}

	now := c.nowFunc()
	if !oldest.IsZero() {
		stats.OldestEntry = now.Sub(oldest)
	}
	if !newest.IsZero() {
		stats.NewestEntry = now.Sub(newest)
	}

	return stats
}

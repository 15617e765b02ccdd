package session

import (
	"context"
	"log"
	"time"
)

// RunCleanup removes sessions idle longer than maxAge every interval until
// ctx is cancelled.
func (m *Manager) RunCleanup(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := m.CleanupExpiredSessions(maxAge); removed > 0 {
				log.Printf("[CLEANUP] removed %d expired sessions, %d active", removed, m.Count())
			}
		}
	}
}

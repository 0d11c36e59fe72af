package session

import (
	"context"
	"time"

	"github.com/alisha-attire/storefront/internal/logging"
)

// Run sweeps expired sessions on a fixed interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, every time.Duration) {
	log := logging.FromContext(ctx)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := m.Sweep(); removed > 0 {
				log.Info("expired sessions removed", "count", removed, "live", m.Len())
			}
		}
	}
}

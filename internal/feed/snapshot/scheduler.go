package snapshot

import (
	"context"
	"time"
)

// ResyncScheduler runs a resync once at startup and then on a fixed
// interval. With a zero interval only the startup run happens.
type ResyncScheduler struct {
	Interval time.Duration
	Load     func(ctx context.Context) error
}

// Start launches the schedule on its own goroutine. Each run is
// fire-and-forget; failures are the loader's problem and never stop the
// schedule.
func (s *ResyncScheduler) Start(ctx context.Context) {
	go func() {
		// Run immediately once at startup
		_ = s.Load(ctx)

		if s.Interval <= 0 {
			return
		}

		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = s.Load(ctx)
			}
		}
	}()
}

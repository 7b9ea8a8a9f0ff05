package field

import (
	"context"
	"time"
)

// DefaultInterval is the cadence at which Run ticks.
const DefaultInterval = 10 * time.Millisecond

// Run ticks s every interval until the field is complete or ctx is done. onTick,
// if set, receives the number of pixels each tick computed.
func Run(ctx context.Context, s *Scheduler, interval time.Duration, onTick func(n int)) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !s.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n := s.Tick(time.Now, s.cfg.Budget)
			if onTick != nil {
				onTick(n)
			}
		}
	}

	return nil
}

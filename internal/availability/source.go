package availability

import (
	"context"
	"time"
)

// Source fetches the slot availability for a date.
// Implementations may be slow; a caller that issues a new request must treat
// any still-outstanding response as superseded and discard it.
type Source interface {
	Fetch(ctx context.Context, date time.Time) ([]Slot, error)
}

// DefaultDelay is the simulated latency of the scheduling system.
const DefaultDelay = 400 * time.Millisecond

// SimulatedSource serves the deterministic schedule after an artificial delay,
// standing in for the clinic's real scheduling system until one exists.
type SimulatedSource struct {
	delay time.Duration
}

// NewSimulatedSource creates a SimulatedSource with the given latency.
// A zero or negative delay responds immediately, which is what tests want.
func NewSimulatedSource(delay time.Duration) *SimulatedSource {
	return &SimulatedSource{delay: delay}
}

// Fetch returns the resolved slots for the date after the configured delay.
func (s *SimulatedSource) Fetch(ctx context.Context, date time.Time) ([]Slot, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return Resolve(date), nil
}

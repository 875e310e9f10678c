package folio

import (
	"context"
	"errors"
	"time"
)

// ErrSimulatedRefusal is the failure outcome of the simulated connector.
var ErrSimulatedRefusal = errors.New("platform refused the connection")

// simulate stands in for a real connector when none is supplied: it waits a
// randomized delay within the configured bounds and then succeeds with the
// configured probability.
func (s *LinkSession) simulate(ctx context.Context) error {
	// The shared rand source is also used by concurrent retries.
	s.mu.Lock()
	delay := s.simMin
	if span := s.simMax - s.simMin; span > 0 {
		delay += time.Duration(s.rng.Int63n(int64(span)))
	}
	refused := s.rng.Float64() >= s.simRate
	s.mu.Unlock()

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	if refused {
		return ErrSimulatedRefusal
	}
	return nil
}

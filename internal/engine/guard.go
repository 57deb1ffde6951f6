package engine

import (
	"errors"
	"time"
)

// ErrLockTimeout indicates the transmission guard could not be acquired
// before the deadline. The command is not sent; re-sending is the caller's
// responsibility and is idempotent at the protocol level.
var ErrLockTimeout = errors.New("transmission lock timeout")

// DefaultLockTimeout bounds guard acquisition when the configuration does
// not say otherwise. Worst-case legitimate holders are long AC state
// transmissions with repeats, well under a second.
const DefaultLockTimeout = 3 * time.Second

// guard serializes hardware transmissions: at most one logical owner at a
// time, with bounded-wait acquisition instead of an unbounded spin.
type guard struct {
	sem     chan struct{}
	timeout time.Duration
}

func newGuard(timeout time.Duration) *guard {
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	return &guard{
		sem:     make(chan struct{}, 1),
		timeout: timeout,
	}
}

// acquire takes the guard or fails with ErrLockTimeout after the deadline.
func (g *guard) acquire() error {
	timer := time.NewTimer(g.timeout)
	defer timer.Stop()
	select {
	case g.sem <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrLockTimeout
	}
}

// release returns the guard. Callers release exactly once per successful
// acquire, on every exit path.
func (g *guard) release() {
	<-g.sem
}

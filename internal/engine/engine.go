package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/skoona/sknSensors-IRService/internal/command"
	"github.com/skoona/sknSensors-IRService/internal/ir"
	"github.com/skoona/sknSensors-IRService/internal/logging"
	"github.com/skoona/sknSensors-IRService/internal/protocol"
)

// Status event kinds delivered to OnStatus subscribers.
const (
	StatusReceived = "received"
	StatusSent     = "sent"
)

// DefaultPollInterval paces the receive poll loop.
const DefaultPollInterval = 100 * time.Millisecond

// Config holds the engine's timing knobs.
type Config struct {
	// PollInterval paces the receive poll loop; zero means
	// DefaultPollInterval.
	PollInterval time.Duration
	// LockTimeout bounds transmission-guard acquisition; zero means
	// DefaultLockTimeout.
	LockTimeout time.Duration
}

// Engine owns the transcoding state that used to be ambient: the
// transmission guard, the last-received and last-sent report strings, and
// the receive enable toggle. One engine instance fronts one transmit and
// one receive device.
type Engine struct {
	tx    protocol.Transmitter
	rx    ir.Receiver
	guard *guard

	pollInterval time.Duration

	mu           sync.Mutex
	lastReceived string
	lastSent     string
	listeners    []func(kind, value string)

	recvEnabled atomic.Bool
}

// New creates an engine for the given hardware boundary. rx may be nil for
// send-only deployments.
func New(tx protocol.Transmitter, rx ir.Receiver, cfg Config) *Engine {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	e := &Engine{
		tx:           tx,
		rx:           rx,
		guard:        newGuard(cfg.LockTimeout),
		pollInterval: interval,
	}
	e.recvEnabled.Store(true)
	return e
}

// Send parses and dispatches one canonical command string under the
// transmission guard. On success it returns the command-echo string and
// records it as the last-sent report.
func (e *Engine) Send(cmdStr string) (string, error) {
	cmd, err := command.Parse(cmdStr)
	if err != nil {
		logging.Warn("Command rejected",
			zap.String("command", cmdStr),
			zap.Error(err),
		)
		return "", err
	}

	if err := e.guard.acquire(); err != nil {
		logging.Warn("Transmission guard busy",
			zap.String("command", cmdStr),
			zap.Error(err),
		)
		return "", err
	}
	err = protocol.Dispatch(e.tx, cmd)
	e.guard.release()

	if err != nil {
		logging.Warn("Dispatch failed",
			zap.String("command", cmd.String()),
			zap.Error(err),
		)
		return "", err
	}

	echo := protocol.FormatEcho(cmd)
	e.mu.Lock()
	e.lastSent = echo
	e.mu.Unlock()
	e.notify(StatusSent, echo)

	p := protocol.Protocol(cmd.Protocol)
	logging.LogTransmit(p.String(), cmd.Code,
		protocol.EffectiveBits(p, cmd.Bits),
		protocol.EffectiveRepeats(p, cmd.Repeats))
	return echo, nil
}

// Run polls the receiver until ctx is cancelled. While receive reporting
// is disabled the formatter does not run and no status is published.
func (e *Engine) Run(ctx context.Context) error {
	if e.rx == nil {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.pollOnce()
		}
	}
}

// pollOnce drains at most one pending capture. It is never gated by the
// transmission guard: receive and transmit use physically distinct lines.
func (e *Engine) pollOnce() {
	if !e.recvEnabled.Load() {
		return
	}
	capture, ok := e.rx.Capture()
	if !ok {
		return
	}

	report := protocol.FormatCapture(capture)
	e.mu.Lock()
	e.lastReceived = report
	e.mu.Unlock()
	e.notify(StatusReceived, report)
	logging.LogCapture(capture.Type.String(), capture.Value, capture.Bits)
}

// SetReceiveEnabled gates whether received waveforms are decoded and
// reported at all.
func (e *Engine) SetReceiveEnabled(enabled bool) {
	e.recvEnabled.Store(enabled)
	logging.Info("Receive reporting toggled", zap.Bool("enabled", enabled))
}

// ReceiveEnabled reports the current toggle state.
func (e *Engine) ReceiveEnabled() bool {
	return e.recvEnabled.Load()
}

// LastReceived returns the most recent receive report string.
func (e *Engine) LastReceived() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastReceived
}

// LastSent returns the most recent command-echo string.
func (e *Engine) LastSent() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSent
}

// OnStatus registers a listener for status events. Register before Run and
// before serving commands; listeners are invoked synchronously.
func (e *Engine) OnStatus(fn func(kind, value string)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

func (e *Engine) notify(kind, value string) {
	e.mu.Lock()
	listeners := make([]func(kind, value string), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()
	for _, fn := range listeners {
		fn(kind, value)
	}
}

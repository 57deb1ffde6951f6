package ir

import (
	"sync"
	"time"

	"github.com/skoona/sknSensors-IRService/internal/protocol"
)

// SendRecord captures one hardware-boundary call on a Loopback, with the
// wall-clock window the call occupied.
type SendRecord struct {
	Op       string // "send", "raw", "pronto", "globalcache", "state"
	Protocol protocol.Protocol
	Code     uint64
	Bits     int
	Repeats  int
	FreqHz   int
	Values   []uint16
	State    []byte
	Start    time.Time
	End      time.Time
}

// Loopback is an in-memory Transmitter and Receiver. It records every send
// for inspection and replays injected captures, backing tests and the
// offline decode tooling.
type Loopback struct {
	mu      sync.Mutex
	records []SendRecord
	pending []*protocol.Capture
	delay   time.Duration
	err     error
}

// NewLoopback returns an empty loopback device.
func NewLoopback() *Loopback {
	return &Loopback{}
}

// SetDelay makes every send occupy d of wall-clock time, for exercising
// serialization behavior.
func (l *Loopback) SetDelay(d time.Duration) {
	l.mu.Lock()
	l.delay = d
	l.mu.Unlock()
}

// SetError makes every subsequent send fail with err (nil restores
// success).
func (l *Loopback) SetError(err error) {
	l.mu.Lock()
	l.err = err
	l.mu.Unlock()
}

func (l *Loopback) record(r SendRecord) error {
	l.mu.Lock()
	delay, err := l.delay, l.err
	l.mu.Unlock()

	r.Start = time.Now()
	if delay > 0 {
		time.Sleep(delay)
	}
	r.End = time.Now()

	l.mu.Lock()
	l.records = append(l.records, r)
	l.mu.Unlock()
	return err
}

// Send implements protocol.Transmitter.
func (l *Loopback) Send(p protocol.Protocol, code uint64, bits, repeats int) error {
	return l.record(SendRecord{Op: "send", Protocol: p, Code: code, Bits: bits, Repeats: repeats})
}

// SendRaw implements protocol.Transmitter.
func (l *Loopback) SendRaw(freqHz int, durations []uint16) error {
	values := make([]uint16, len(durations))
	copy(values, durations)
	return l.record(SendRecord{Op: "raw", FreqHz: freqHz, Values: values})
}

// SendPronto implements protocol.Transmitter.
func (l *Loopback) SendPronto(values []uint16, repeats int) error {
	v := make([]uint16, len(values))
	copy(v, values)
	return l.record(SendRecord{Op: "pronto", Values: v, Repeats: repeats})
}

// SendGlobalCache implements protocol.Transmitter.
func (l *Loopback) SendGlobalCache(values []uint16) error {
	v := make([]uint16, len(values))
	copy(v, values)
	return l.record(SendRecord{Op: "globalcache", Values: v})
}

// SendState implements protocol.Transmitter.
func (l *Loopback) SendState(p protocol.Protocol, state []byte, repeats int) error {
	s := make([]byte, len(state))
	copy(s, state)
	return l.record(SendRecord{Op: "state", Protocol: p, State: s, Repeats: repeats})
}

// Sends returns a copy of all recorded sends in call order.
func (l *Loopback) Sends() []SendRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]SendRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Inject queues a capture for delivery through Capture.
func (l *Loopback) Inject(c *protocol.Capture) {
	l.mu.Lock()
	l.pending = append(l.pending, c)
	l.mu.Unlock()
}

// Capture implements Receiver.
func (l *Loopback) Capture() (*protocol.Capture, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pending) == 0 {
		return nil, false
	}
	c := l.pending[0]
	l.pending = l.pending[1:]
	return c, true
}

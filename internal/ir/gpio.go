package ir

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/skoona/sknSensors-IRService/internal/logging"
	"github.com/skoona/sknSensors-IRService/internal/protocol"
)

// prontoCycleUS is the Pronto clock: carrier divider units of 0.241246us.
const prontoCycleUS = 0.241246

// prontoDataOffset is where burst-pair data starts, after the four-value
// preamble (format, carrier divider, sequence lengths).
const prontoDataOffset = 4

// globalCacheDataOffset is where on/off cycle counts start in a
// GlobalCache value list (after frequency, repeat, offset).
const globalCacheDataOffset = 3

var (
	hostOnce sync.Once
	hostErr  error
)

// ensureHost initializes the periph host drivers exactly once.
func ensureHost() error {
	hostOnce.Do(func() {
		_, hostErr = host.Init()
	})
	return hostErr
}

// GPIOTransmitter drives an IR LED stage on a single GPIO pin. The pin
// gates marks and spaces; carrier modulation is expected from the LED
// driver hardware.
type GPIOTransmitter struct {
	pin gpio.PinIO
}

// NewGPIOTransmitter opens the named pin for output.
func NewGPIOTransmitter(pinName string) (*GPIOTransmitter, error) {
	if err := ensureHost(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no such gpio pin %q", pinName)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("configure pin %q: %w", pinName, err)
	}
	return &GPIOTransmitter{pin: pin}, nil
}

// transmit plays a mark/space duration train on the pin, marks first.
func (g *GPIOTransmitter) transmit(durations []uint32) error {
	level := gpio.High
	for _, d := range durations {
		if err := g.pin.Out(level); err != nil {
			_ = g.pin.Out(gpio.Low)
			return fmt.Errorf("%w: %v", protocol.ErrSendUnacknowledged, err)
		}
		time.Sleep(time.Duration(d) * time.Microsecond)
		if level == gpio.High {
			level = gpio.Low
		} else {
			level = gpio.High
		}
	}
	return g.pin.Out(gpio.Low)
}

// Send renders and transmits a scalar code. Protocols without a native
// timing entry report ErrSendUnacknowledged; they remain reachable through
// the raw and Pronto paths.
func (g *GPIOTransmitter) Send(p protocol.Protocol, code uint64, bits, repeats int) error {
	t, ok := nativeTiming(p)
	if !ok {
		return fmt.Errorf("%w: no native waveform timing for %s", protocol.ErrSendUnacknowledged, p)
	}
	frame := encodeCode(t, code, bits)
	for i := 0; i <= repeats; i++ {
		if err := g.transmit(frame); err != nil {
			return err
		}
	}
	logging.LogTransmit(p.String(), code, bits, repeats)
	return nil
}

// SendRaw transmits caller-supplied durations unchanged. The carrier
// frequency is informational: the driver stage runs a fixed carrier.
func (g *GPIOTransmitter) SendRaw(freqHz int, durations []uint16) error {
	logging.Debug("raw send",
		zap.Int("freq_hz", freqHz),
		zap.Int("durations", len(durations)),
	)
	buf := make([]uint32, len(durations))
	for i, d := range durations {
		buf[i] = uint32(d)
	}
	return g.transmit(buf)
}

// SendPronto converts a Pronto value sequence into microsecond durations
// and transmits it 1+repeats times.
func (g *GPIOTransmitter) SendPronto(values []uint16, repeats int) error {
	if len(values) <= prontoDataOffset || values[1] == 0 {
		return fmt.Errorf("%w: unusable pronto preamble", protocol.ErrSendUnacknowledged)
	}
	// Each data value counts carrier cycles; one cycle is divider*0.241246us
	cycleUS := float64(values[1]) * prontoCycleUS
	buf := make([]uint32, 0, len(values)-prontoDataOffset)
	for _, v := range values[prontoDataOffset:] {
		buf = append(buf, uint32(float64(v)*cycleUS+0.5))
	}
	for i := 0; i <= repeats; i++ {
		if err := g.transmit(buf); err != nil {
			return err
		}
	}
	return nil
}

// SendGlobalCache transmits a GlobalCache value list: frequency, repeat
// count, offset, then on/off durations in carrier cycles.
func (g *GPIOTransmitter) SendGlobalCache(values []uint16) error {
	if len(values) <= globalCacheDataOffset || values[0] == 0 {
		return fmt.Errorf("%w: unusable globalcache header", protocol.ErrSendUnacknowledged)
	}
	periodUS := 1000000.0 / float64(values[0])
	repeats := int(values[1])
	if repeats < 1 {
		repeats = 1
	}
	buf := make([]uint32, 0, len(values)-globalCacheDataOffset)
	for _, v := range values[globalCacheDataOffset:] {
		buf = append(buf, uint32(float64(v)*periodUS+0.5))
	}
	for i := 0; i < repeats; i++ {
		if err := g.transmit(buf); err != nil {
			return err
		}
	}
	return nil
}

// SendState renders and transmits an AC state block.
func (g *GPIOTransmitter) SendState(p protocol.Protocol, state []byte, repeats int) error {
	t, ok := nativeTiming(p)
	if !ok {
		return fmt.Errorf("%w: no native waveform timing for %s", protocol.ErrSendUnacknowledged, p)
	}
	frame := encodeState(t, state)
	for i := 0; i <= repeats; i++ {
		if err := g.transmit(frame); err != nil {
			return err
		}
	}
	return nil
}

// GPIOReceiver captures mark/space trains from a demodulating IR receiver
// module (idle high, active low) on a single GPIO pin.
type GPIOReceiver struct {
	pin gpio.PinIO
	ch  chan *protocol.Capture
}

// NewGPIOReceiver opens the named pin for edge-timed input. bufferSize
// bounds how many undelivered captures are retained; older frames are
// dropped when the consumer falls behind.
func NewGPIOReceiver(pinName string, bufferSize int) (*GPIOReceiver, error) {
	if err := ensureHost(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no such gpio pin %q", pinName)
	}
	if err := pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("configure pin %q: %w", pinName, err)
	}
	if bufferSize < 1 {
		bufferSize = 8
	}
	return &GPIOReceiver{
		pin: pin,
		ch:  make(chan *protocol.Capture, bufferSize),
	}, nil
}

// Run collects edges into frames until ctx is cancelled. A frame closes
// after frameGapUS of silence and is decoded and queued for Capture.
func (r *GPIOReceiver) Run(ctx context.Context) {
	gap := time.Duration(frameGapUS) * time.Microsecond
	frame := make([]uint32, 0, maxFrameEdges)
	last := time.Now()

	for ctx.Err() == nil {
		if !r.pin.WaitForEdge(gap) {
			// Silence: close out any frame in progress
			if len(frame) > 0 {
				r.deliver(frame)
				frame = frame[:0]
			}
			last = time.Now()
			continue
		}

		now := time.Now()
		d := uint32(now.Sub(last) / time.Microsecond)
		last = now

		if r.pin.Read() == gpio.High {
			// Rising edge: a mark just ended
			frame = append(frame, d)
		} else if len(frame) > 0 {
			// Falling edge inside a frame: a space just ended
			frame = append(frame, d)
		}

		if len(frame) >= maxFrameEdges {
			r.deliver(frame)
			frame = frame[:0]
		}
	}
}

func (r *GPIOReceiver) deliver(frame []uint32) {
	durations := make([]uint32, len(frame))
	copy(durations, frame)
	capture := Decode(durations)

	select {
	case r.ch <- capture:
	default:
		// Consumer is behind; drop the oldest frame to keep fresh data
		select {
		case <-r.ch:
		default:
		}
		select {
		case r.ch <- capture:
		default:
		}
	}
}

// Capture returns the next pending frame decode, if any.
func (r *GPIOReceiver) Capture() (*protocol.Capture, bool) {
	select {
	case c := <-r.ch:
		return c, true
	default:
		return nil, false
	}
}

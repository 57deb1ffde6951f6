package protocol

import (
	"fmt"
	"strings"

	"github.com/skoona/sknSensors-IRService/internal/command"
)

// maxDuration is the largest mark/space duration representable in the
// 16-bit wire form. Longer captured durations are split into max,0 pairs.
const maxDuration = 65535

// Capture is a decoded received waveform as delivered by the hardware
// receive primitive.
type Capture struct {
	// Type is the decoded protocol, or Unknown when the waveform was not
	// recognized.
	Type Protocol
	// Value is the decoded scalar code (or a stable hash for Unknown).
	Value uint64
	// Bits is the decoded bit count.
	Bits int
	// State holds the decoded state block for stateful AC protocols.
	State []byte
	// Raw holds the captured mark/space durations in microseconds.
	// Populated for Unknown captures so they can be re-sent as raw.
	Raw []uint32
}

// FormatCapture converts a capture into the canonical receive report
// string: the decode type and hex value, the raw duration train after a
// ";" for unrecognized waveforms, and the bit count for protocols that are
// not stateful. This is the designed inverse of command.Parse for
// short-form protocols.
func FormatCapture(c *Capture) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d%c", int(c.Type), command.ValueDelimiter)
	if c.Type.IsStateful() && len(c.State) > 0 {
		for _, v := range c.State {
			fmt.Fprintf(&b, "%02X", v)
		}
	} else {
		fmt.Fprintf(&b, "%X", c.Value)
	}

	if c.Type == Unknown {
		b.WriteByte(';')
		appendDurations(&b, c.Raw)
	}

	if !c.Type.IsStateful() {
		fmt.Fprintf(&b, "%c%d", command.ValueDelimiter, c.Bits)
	}

	return b.String()
}

// appendDurations comma-joins raw durations, splitting any duration wider
// than 16 bits into repeated max,0 pairs followed by the true remainder so
// every emitted value stays representable.
func appendDurations(b *strings.Builder, durations []uint32) {
	first := true
	emit := func(v uint32) {
		if !first {
			b.WriteByte(command.ValueDelimiter)
		}
		first = false
		fmt.Fprintf(b, "%d", v)
	}
	for _, d := range durations {
		for d > maxDuration {
			emit(maxDuration)
			emit(0)
			d -= maxDuration
		}
		emit(d)
	}
}

// FormatEcho renders the command-echo string for a successfully dispatched
// command, using the same formatting rules as the receive side but sourced
// from what was actually transmitted. Short-form commands echo as a
// synthetic capture with the effective bit width applied; long-form
// commands echo the protocol id with their payload.
func FormatEcho(cmd *command.Command) string {
	p := Protocol(cmd.Protocol)
	if p.IsLongForm() {
		return fmt.Sprintf("%d%c%s", cmd.Protocol, command.ValueDelimiter, cmd.Payload)
	}
	return FormatCapture(&Capture{
		Type:  p,
		Value: cmd.Code,
		Bits:  EffectiveBits(p, cmd.Bits),
	})
}

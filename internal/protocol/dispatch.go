package protocol

import (
	"errors"
	"fmt"

	"github.com/skoona/sknSensors-IRService/internal/codec"
	"github.com/skoona/sknSensors-IRService/internal/command"
)

// ErrUnsupportedProtocol indicates a protocol id with no dispatch table
// entry. No hardware call is made.
var ErrUnsupportedProtocol = errors.New("unsupported protocol")

// ErrSendUnacknowledged indicates the hardware send primitive itself
// reported failure.
var ErrSendUnacknowledged = errors.New("send unacknowledged")

// Transmitter is the hardware send primitive boundary. Implementations
// generate the bit-level waveform for each call; the dispatch layer only
// decides which call to make and with what effective parameters.
type Transmitter interface {
	// Send transmits a scalar code for a short-form protocol.
	Send(p Protocol, code uint64, bits, repeats int) error
	// SendRaw transmits alternating mark/space durations in microseconds
	// at the given carrier frequency.
	SendRaw(freqHz int, durations []uint16) error
	// SendPronto transmits a Pronto-hex value sequence, preamble included.
	SendPronto(values []uint16, repeats int) error
	// SendGlobalCache transmits a GlobalCache value list
	// (frequency, repeat, offset, on/off cycle counts).
	SendGlobalCache(values []uint16) error
	// SendState transmits an AC-style state block.
	SendState(p Protocol, state []byte, repeats int) error
}

// Dispatch routes a parsed command to exactly one transmission call on tx.
//
// For short-form protocols a zero bit width is replaced by the protocol
// default and the repeat count is raised to (never lowered from) the
// protocol minimum. Long-form protocols route to their codec instead and
// the scalar substitution rules do not apply; Pronto is the exception in
// that its payload may override the caller-supplied repeat count.
func Dispatch(tx Transmitter, cmd *command.Command) error {
	p := Protocol(cmd.Protocol)
	if !p.Supported() {
		return fmt.Errorf("%w: protocol id %d", ErrUnsupportedProtocol, cmd.Protocol)
	}

	switch {
	case p == Raw:
		payload, err := codec.ParseRaw(cmd.Payload)
		if err != nil {
			return err
		}
		return tx.SendRaw(payload.FrequencyHz, payload.Durations)

	case p == Pronto:
		payload, err := codec.ParsePronto(cmd.Payload, cmd.Repeats)
		if err != nil {
			return err
		}
		return tx.SendPronto(payload.Values, payload.Repeats)

	case p == GlobalCache:
		payload, err := codec.ParseGlobalCache(cmd.Payload)
		if err != nil {
			return err
		}
		return tx.SendGlobalCache(payload.Values)

	case p.IsStateful():
		state, err := codec.ParseState(cmd.Payload)
		if err != nil {
			return err
		}
		if want := p.StateBytes(); len(state) != want {
			if len(state) < want {
				return fmt.Errorf("%w: %s state needs %d bytes, got %d",
					codec.ErrInsufficientValues, p, want, len(state))
			}
			return fmt.Errorf("%w: %s state needs %d bytes, got %d",
				command.ErrMalformedCommand, p, want, len(state))
		}
		return tx.SendState(p, state, cmd.Repeats)

	default:
		return tx.Send(p, cmd.Code, EffectiveBits(p, cmd.Bits), EffectiveRepeats(p, cmd.Repeats))
	}
}

// EffectiveBits applies the default-bit-width policy: zero or absent means
// use the protocol default.
func EffectiveBits(p Protocol, requested int) int {
	if requested == 0 {
		return p.DefaultBits()
	}
	return requested
}

// EffectiveRepeats applies the minimum-repeat policy: the caller's value is
// raised to the protocol floor and never lowered.
func EffectiveRepeats(p Protocol, requested int) int {
	if min := p.MinRepeats(); requested < min {
		return min
	}
	return requested
}

package codec

import (
	"errors"
	"fmt"

	"github.com/skoona/sknSensors-IRService/internal/command"
)

// ErrInsufficientValues indicates a long-form payload with fewer values
// than its grammar requires.
var ErrInsufficientValues = errors.New("insufficient values")

// DefaultCarrierHz is the conventional consumer-IR carrier frequency used
// when a sender has no better information.
const DefaultCarrierHz = 38000

// RawPayload is a parsed raw-timing payload: a carrier frequency followed
// by alternating mark/space durations in microseconds.
type RawPayload struct {
	FrequencyHz int
	Durations   []uint16
}

// ParseRaw parses a raw payload of the form
//
//	frequency "," duration ("," duration)*
//
// The first value is the carrier frequency in Hz, the remainder are
// alternating mark/space durations in microseconds with no upper count
// limit. Fewer than two values total fails with ErrInsufficientValues.
func ParseRaw(payload string) (*RawPayload, error) {
	values, err := command.ParseValues(payload)
	if err != nil {
		return nil, fmt.Errorf("raw payload: %w", err)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: raw needs a frequency and at least one duration, got %d value(s)",
			ErrInsufficientValues, len(values))
	}
	return &RawPayload{
		FrequencyHz: int(values[0]),
		Durations:   values[1:],
	}, nil
}

// String returns a debug representation of the payload
func (p *RawPayload) String() string {
	return fmt.Sprintf("Raw{freq=%dHz, durations=%d}", p.FrequencyHz, len(p.Durations))
}

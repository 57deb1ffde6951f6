package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skoona/sknSensors-IRService/internal/command"
)

// ProntoMinValues is the smallest usable Pronto payload: the four-value
// preamble plus one complete burst pair.
const ProntoMinValues = 6

// ProntoPayload is a parsed Pronto-hex payload.
type ProntoPayload struct {
	// Values is the hex value sequence, preamble included. The repeat
	// override token (if any) is excluded.
	Values []uint16
	// Repeats is the effective repeat count. When HasOverride is set it
	// came from the payload's leading R token and takes precedence over
	// any caller-supplied repeat count.
	Repeats     int
	HasOverride bool
}

// ParsePronto parses a Pronto payload of the form
//
//	["R" repeatOverride ","] hexValue ("," hexValue)*
//
// A leading R (or r) token carries a decimal repeat count that overrides
// the caller-supplied repeats; it does not count toward the value minimum.
// Fewer than ProntoMinValues remaining values fails with
// ErrInsufficientValues.
func ParsePronto(payload string, repeats int) (*ProntoPayload, error) {
	result := &ProntoPayload{Repeats: repeats}

	rest := payload
	if len(rest) > 0 && (rest[0] == 'R' || rest[0] == 'r') {
		tok := rest[1:]
		if idx := strings.IndexByte(tok, command.ValueDelimiter); idx >= 0 {
			rest = tok[idx+1:]
			tok = tok[:idx]
		} else {
			rest = ""
		}
		override, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("pronto repeat override %q: %w", tok, err)
		}
		result.Repeats = int(override)
		result.HasOverride = true
	}

	values, err := command.ParseHexValues(rest)
	if err != nil {
		return nil, fmt.Errorf("pronto payload: %w", err)
	}
	if len(values) < ProntoMinValues {
		return nil, fmt.Errorf("%w: pronto needs at least %d values, got %d",
			ErrInsufficientValues, ProntoMinValues, len(values))
	}
	result.Values = values

	return result, nil
}

// String returns a debug representation of the payload
func (p *ProntoPayload) String() string {
	return fmt.Sprintf("Pronto{values=%d, repeats=%d, override=%v}",
		len(p.Values), p.Repeats, p.HasOverride)
}

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCommand indicates a structurally invalid command string
// (missing required tokens or a non-numeric protocol id).
var ErrMalformedCommand = errors.New("malformed command")

// Command is the parsed in-memory form of a canonical command string.
type Command struct {
	// Protocol is the numeric protocol identifier from the first token.
	Protocol int
	// Code is the base-16 value of the second token. It is parsed
	// unconditionally; for long-form protocols the second token is part of
	// a structured payload and Code is a don't-care value (zero when the
	// token is not valid hex).
	Code uint64
	// Bits is the requested bit width, zero when absent (use the protocol
	// default).
	Bits int
	// Repeats is the requested repeat count, zero when absent.
	Repeats int
	// Payload is the original substring after the first comma, regardless
	// of protocol class. Long-form codecs re-parse it independently, so
	// extra commas beyond the fourth token are legal here.
	Payload string
}

// Parse splits a canonical command string into a Command.
//
// The first token must be a non-negative decimal protocol id and the second
// token must be present; anything else fails with ErrMalformedCommand.
// Tokens three and four (bit width, repeat count) are optional decimal
// values; unparseable values are treated as absent, matching the lenient
// numeric handling of the wire format. Tokens beyond the fourth are left to
// the long-form codecs.
func Parse(s string) (*Command, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty command", ErrMalformedCommand)
	}

	idx := strings.IndexByte(s, ValueDelimiter)
	if idx < 0 {
		return nil, fmt.Errorf("%w: at least protocol id and code required", ErrMalformedCommand)
	}

	protoTok := strings.TrimSpace(s[:idx])
	proto, err := strconv.Atoi(protoTok)
	if err != nil || proto < 0 {
		return nil, fmt.Errorf("%w: invalid protocol id %q", ErrMalformedCommand, protoTok)
	}

	payload := s[idx+1:]
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("%w: at least protocol id and code required", ErrMalformedCommand)
	}

	cmd := &Command{
		Protocol: proto,
		Payload:  payload,
	}

	// Only the next three tokens are interpreted here; the fourth part (if
	// any) belongs to a long-form payload and stays unparsed.
	parts := strings.SplitN(payload, string(ValueDelimiter), 4)

	// The code token is hex-parsed unconditionally, even for long-form
	// protocols where the payload is not a scalar code. A failed parse
	// yields zero rather than an error so long-form payloads (e.g. Pronto's
	// leading "R2") never fail here.
	if code, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 16, 64); err == nil {
		cmd.Code = code
	}

	if len(parts) > 1 {
		if bits, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 16); err == nil {
			cmd.Bits = int(bits)
		}
	}
	if len(parts) > 2 {
		if repeats, err := strconv.ParseUint(strings.TrimSpace(parts[2]), 10, 16); err == nil {
			cmd.Repeats = int(repeats)
		}
	}

	return cmd, nil
}

// String returns a debug representation of the command
func (c *Command) String() string {
	return fmt.Sprintf("Command{protocol=%d, code=0x%X, bits=%d, repeats=%d, payload=%q}",
		c.Protocol, c.Code, c.Bits, c.Repeats, c.Payload)
}

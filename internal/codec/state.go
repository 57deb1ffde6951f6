package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/skoona/sknSensors-IRService/internal/command"
)

// ParseState decodes an AC-state payload: a contiguous hex string encoding
// the protocol's state block, most significant byte first. Only the first
// comma-delimited token is the state; anything after it is ignored so the
// shared command grammar's optional trailing tokens stay legal.
//
// An odd-length hex string is padded with a leading zero nibble. Length
// validation against the protocol's expected state size is the dispatcher's
// job, since the expected size is a per-protocol property.
func ParseState(payload string) ([]byte, error) {
	tok := payload
	if idx := strings.IndexByte(tok, command.ValueDelimiter); idx >= 0 {
		tok = tok[:idx]
	}
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, fmt.Errorf("%w: empty state block", ErrInsufficientValues)
	}
	if len(tok)%2 != 0 {
		tok = "0" + tok
	}

	state, err := hex.DecodeString(tok)
	if err != nil {
		return nil, fmt.Errorf("state block: %w", err)
	}
	return state, nil
}

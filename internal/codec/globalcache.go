package codec

import (
	"fmt"
	"strings"

	"github.com/skoona/sknSensors-IRService/internal/command"
)

// globalCachePrefix is the conventional module-addressing prefix some
// GlobalCache senders include ("sendir,1:1,1,..."). It carries no waveform
// information and is stripped before parsing.
const globalCachePrefix = "1:1,1,"

// GlobalCachePayload is a parsed GlobalCache value list:
// frequency, repeat, offset, then on/off durations in carrier cycles.
type GlobalCachePayload struct {
	Values []uint16
}

// ParseGlobalCache parses a GlobalCache payload: a decimal value list,
// passed through unchanged apart from stripping the optional device
// addressing prefix. An empty list fails with ErrInsufficientValues.
func ParseGlobalCache(payload string) (*GlobalCachePayload, error) {
	payload = strings.TrimPrefix(payload, globalCachePrefix)

	values, err := command.ParseValues(payload)
	if err != nil {
		return nil, fmt.Errorf("globalcache payload: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: globalcache payload produced no values", ErrInsufficientValues)
	}
	return &GlobalCachePayload{Values: values}, nil
}

// String returns a debug representation of the payload
func (p *GlobalCachePayload) String() string {
	return fmt.Sprintf("GlobalCache{values=%d}", len(p.Values))
}

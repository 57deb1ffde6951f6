package command

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueDelimiter separates entries in a numeric value list.
const ValueDelimiter = ','

// CountValues returns the number of non-empty comma-delimited tokens in s.
// This is the counting pass of the two-pass parse: ParseValues and
// ParseHexValues allocate their result slice from this count, so the
// allocation always matches the token count exactly. Empty tokens (from
// doubled or trailing commas) are not counted; the long-form grammars treat
// them as absent.
func CountValues(s string) int {
	count := 0
	for _, tok := range strings.Split(s, string(ValueDelimiter)) {
		if strings.TrimSpace(tok) != "" {
			count++
		}
	}
	return count
}

// ParseValues parses s as a comma-delimited list of decimal unsigned 16-bit
// values. The result slice is sized by a prior CountValues pass and filled
// in order.
func ParseValues(s string) ([]uint16, error) {
	return parseValues(s, 10)
}

// ParseHexValues parses s as a comma-delimited list of base-16 unsigned
// 16-bit values (Pronto style, no 0x prefix).
func ParseHexValues(s string) ([]uint16, error) {
	return parseValues(s, 16)
}

func parseValues(s string, base int) ([]uint16, error) {
	values := make([]uint16, 0, CountValues(s))
	for _, tok := range strings.Split(s, string(ValueDelimiter)) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			// Doubled or trailing delimiter - the token carries no value
			continue
		}
		v, err := strconv.ParseUint(tok, base, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", tok, err)
		}
		values = append(values, uint16(v))
	}
	return values, nil
}

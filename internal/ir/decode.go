package ir

import "github.com/skoona/sknSensors-IRService/internal/protocol"

// toleranceDivisor sets the matching window for duration comparison:
// want +/- want/4, i.e. 25%.
const toleranceDivisor = 4

// decodable lists the protocols the receive side tries, in order. They all
// use pulse-distance bits, so one matcher covers them with their native
// timings and bit counts.
var decodable = []protocol.Protocol{
	protocol.NEC,
	protocol.Samsung,
	protocol.JVC,
	protocol.LG,
}

// Decode classifies a captured mark/space train. Unrecognized frames come
// back as protocol.Unknown with a stable hash value and the raw durations
// attached so the report can carry them.
func Decode(durations []uint32) *protocol.Capture {
	for _, p := range decodable {
		t, ok := nativeTiming(p)
		if !ok {
			continue
		}
		if value, bits, ok := decodePulseDistance(durations, t, p.DefaultBits()); ok {
			return &protocol.Capture{Type: p, Value: value, Bits: bits}
		}
	}
	return &protocol.Capture{
		Type:  protocol.Unknown,
		Value: hashDurations(durations),
		Raw:   durations,
	}
}

// decodePulseDistance matches a header, the expected number of
// constant-mark bits, and a trailer mark against t.
func decodePulseDistance(durations []uint32, t timing, bits int) (uint64, int, bool) {
	// header pair + bit pairs + trailer mark, fully consumed: a longer
	// train is a different protocol whose bit timing happens to overlap
	if len(durations) != 2+2*bits+1 {
		return 0, 0, false
	}
	if !matchDuration(durations[0], t.headerMark) || !matchDuration(durations[1], t.headerSpace) {
		return 0, 0, false
	}

	var value uint64
	pos := 2
	for i := 0; i < bits; i++ {
		if !matchDuration(durations[pos], t.bitMark) {
			return 0, 0, false
		}
		space := durations[pos+1]
		switch {
		case matchDuration(space, t.oneSpace):
			value = value<<1 | 1
		case matchDuration(space, t.zeroSpace):
			value = value << 1
		default:
			return 0, 0, false
		}
		pos += 2
	}

	if !matchDuration(durations[pos], t.trailerMark) {
		return 0, 0, false
	}
	return value, bits, true
}

func matchDuration(measured uint32, want int) bool {
	delta := want / toleranceDivisor
	return int(measured) >= want-delta && int(measured) <= want+delta
}

// hashDurations produces a stable FNV-style hash over the shape of an
// unrecognized waveform. Durations are compared pairwise rather than
// hashed directly, so receiver jitter does not change the result.
func hashDurations(durations []uint32) uint64 {
	const fnvPrime = 16777619
	var hash uint64 = 2166136261
	for i := 0; i+1 < len(durations); i++ {
		hash = (hash ^ compareDurations(durations[i], durations[i+1])) * fnvPrime
	}
	return hash
}

// compareDurations buckets a successive pair as shorter, equal-ish, or
// longer, tolerating 25% jitter.
func compareDurations(a, b uint32) uint64 {
	switch {
	case a < b-b/toleranceDivisor:
		return 0
	case a > b+b/toleranceDivisor:
		return 2
	default:
		return 1
	}
}

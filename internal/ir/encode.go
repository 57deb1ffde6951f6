package ir

// appendHeader appends the frame's lead mark/space pair.
func appendHeader(buf []uint32, t timing) []uint32 {
	return append(buf, uint32(t.headerMark), uint32(t.headerSpace))
}

// appendBit appends one pulse-distance bit: a constant mark whose trailing
// space width carries the bit value.
func appendBit(buf []uint32, t timing, one bool) []uint32 {
	space := t.zeroSpace
	if one {
		space = t.oneSpace
	}
	return append(buf, uint32(t.bitMark), uint32(space))
}

// appendTrailer appends the closing mark and the inter-frame gap.
func appendTrailer(buf []uint32, t timing) []uint32 {
	return append(buf, uint32(t.trailerMark), uint32(t.gap))
}

// encodeCode renders a scalar code of the given bit width into a full
// mark/space frame.
func encodeCode(t timing, code uint64, bits int) []uint32 {
	buf := make([]uint32, 0, 4+2*bits)
	buf = appendHeader(buf, t)
	if t.msbFirst {
		for i := bits - 1; i >= 0; i-- {
			buf = appendBit(buf, t, code>>uint(i)&1 == 1)
		}
	} else {
		for i := 0; i < bits; i++ {
			buf = appendBit(buf, t, code>>uint(i)&1 == 1)
		}
	}
	return appendTrailer(buf, t)
}

// encodeState renders an AC state block into a full frame. Bytes are sent
// in order; bits within each byte go least significant first, the common
// convention for AC remotes.
func encodeState(t timing, state []byte) []uint32 {
	buf := make([]uint32, 0, 4+16*len(state))
	buf = appendHeader(buf, t)
	for _, b := range state {
		for i := 0; i < 8; i++ {
			buf = appendBit(buf, t, b>>uint(i)&1 == 1)
		}
	}
	return appendTrailer(buf, t)
}

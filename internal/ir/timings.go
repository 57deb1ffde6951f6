package ir

import "github.com/skoona/sknSensors-IRService/internal/protocol"

// timing describes a pulse-distance protocol: a header mark/space pair,
// constant-width bit marks whose trailing space length distinguishes ones
// from zeros, a trailer mark, and the inter-frame gap. All values in
// microseconds.
type timing struct {
	headerMark  int
	headerSpace int
	bitMark     int
	oneSpace    int
	zeroSpace   int
	trailerMark int
	gap         int
	msbFirst    bool
}

// timings is the waveform generation table for protocols this transmitter
// can render natively. Protocols absent here can still be sent through the
// raw/Pronto/GlobalCache paths.
//
// NEC family timing per the standard 562.5us unit; Samsung and JVC per
// their published variants.
var timings = map[protocol.Protocol]timing{
	protocol.NEC: {
		headerMark:  9000,
		headerSpace: 4500,
		bitMark:     560,
		oneSpace:    1690,
		zeroSpace:   560,
		trailerMark: 560,
		gap:         108000,
		msbFirst:    true,
	},
	// Sherwood remotes speak NEC timing with their own code space
	protocol.Sherwood: {
		headerMark:  9000,
		headerSpace: 4500,
		bitMark:     560,
		oneSpace:    1690,
		zeroSpace:   560,
		trailerMark: 560,
		gap:         108000,
		msbFirst:    true,
	},
	protocol.Whynter: {
		headerMark:  2850,
		headerSpace: 2850,
		bitMark:     750,
		oneSpace:    2150,
		zeroSpace:   750,
		trailerMark: 750,
		gap:         108000,
		msbFirst:    true,
	},
	protocol.Samsung: {
		headerMark:  4480,
		headerSpace: 4480,
		bitMark:     560,
		oneSpace:    1680,
		zeroSpace:   560,
		trailerMark: 560,
		gap:         108000,
		msbFirst:    true,
	},
	protocol.JVC: {
		headerMark:  8400,
		headerSpace: 4200,
		bitMark:     525,
		oneSpace:    1725,
		zeroSpace:   525,
		trailerMark: 525,
		gap:         60000,
		msbFirst:    true,
	},
	protocol.LG: {
		headerMark:  8500,
		headerSpace: 4250,
		bitMark:     560,
		oneSpace:    1600,
		zeroSpace:   560,
		trailerMark: 560,
		gap:         108000,
		msbFirst:    true,
	},
	protocol.LG2: {
		headerMark:  3200,
		headerSpace: 9900,
		bitMark:     480,
		oneSpace:    1600,
		zeroSpace:   560,
		trailerMark: 480,
		gap:         108000,
		msbFirst:    true,
	},
	protocol.Pioneer: {
		headerMark:  8560,
		headerSpace: 4280,
		bitMark:     535,
		oneSpace:    1605,
		zeroSpace:   535,
		trailerMark: 535,
		gap:         25500,
		msbFirst:    true,
	},
	protocol.Dish: {
		headerMark:  400,
		headerSpace: 6100,
		bitMark:     400,
		oneSpace:    1700,
		zeroSpace:   2800,
		trailerMark: 400,
		gap:         6200,
		msbFirst:    true,
	},
	protocol.Nikai: {
		headerMark:  4000,
		headerSpace: 4000,
		bitMark:     500,
		oneSpace:    2000,
		zeroSpace:   1000,
		trailerMark: 500,
		gap:         108000,
		msbFirst:    true,
	},
	// Stateful AC protocols rendered byte-wise with the same scheme
	protocol.Gree: {
		headerMark:  9000,
		headerSpace: 4500,
		bitMark:     620,
		oneSpace:    1600,
		zeroSpace:   540,
		trailerMark: 620,
		gap:         19000,
	},
	protocol.Kelvinator: {
		headerMark:  9010,
		headerSpace: 4505,
		bitMark:     680,
		oneSpace:    1530,
		zeroSpace:   510,
		trailerMark: 680,
		gap:         39950,
	},
	protocol.ToshibaAC: {
		headerMark:  4400,
		headerSpace: 4300,
		bitMark:     543,
		oneSpace:    1623,
		zeroSpace:   472,
		trailerMark: 543,
		gap:         7048,
	},
}

// nativeTiming returns the waveform timing for p when the transmitter can
// render it directly.
func nativeTiming(p protocol.Protocol) (timing, bool) {
	t, ok := timings[p]
	return t, ok
}

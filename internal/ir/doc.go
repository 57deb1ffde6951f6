// Package ir is the hardware boundary of the service: waveform generation
// on a transmit pin and edge-timed capture on a receive pin.
//
// The transmit side implements protocol.Transmitter. Scalar-code and
// state-block sends are rendered into mark/space duration trains using a
// per-protocol pulse-distance timing table; raw, Pronto and GlobalCache
// payloads carry their own durations and are converted directly. Carrier
// modulation is provided by the LED driver stage on the transmit pin, so
// the pin itself only gates marks and spaces.
//
// The receive side watches a demodulating IR receiver module (idle high,
// active low), accumulates mark/space durations per frame, and classifies
// frames with the decoders in this package. Unrecognized frames are
// reported with the raw duration train and a stable hash value.
//
// A Loopback implementation of both sides backs the tests and the offline
// decode tooling.
package ir

// Package codec implements the long-form payload grammars layered on the
// shared value parser: raw mark/space timings, Pronto hex, GlobalCache
// value lists, and air-conditioner state blocks.
//
// Each codec takes the raw payload substring (everything after the first
// comma of the canonical command string) and produces a transmission-ready
// payload struct. Codecs are pure parsers; the protocol dispatch table owns
// the actual transmission call, so a codec failure never reaches the
// hardware.
package codec

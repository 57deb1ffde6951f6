// Package protocol owns the infrared protocol dispatch table and the
// canonical string formatting for the receive side.
//
// # Dispatch
//
// Dispatch maps a parsed command to exactly one call on the Transmitter
// hardware boundary. The static table carries each protocol's default bit
// width and minimum repeat count; the caller's bit width is substituted
// only when absent and the repeat count is only ever raised, never
// lowered. Long-form protocols (raw timings, Pronto, GlobalCache, AC state
// blocks) route through the codec package instead of the scalar path.
//
// # Receive reports
//
// FormatCapture turns a decoded capture back into the canonical string,
// the inverse of command.Parse for short-form protocols:
//
//	3,20DF10EF,32          recognized NEC code
//	46,0223...B0           stateful AC capture (state hex, no bit count)
//	-1,A90;8950,4450,...,0 unrecognized waveform with raw durations
//
// A received raw/Pronto/GlobalCache-originated signal is reported through
// the unrecognized branch unless the receive primitive itself classifies
// it; the asymmetry is intentional.
package protocol

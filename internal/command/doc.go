// Package command implements the canonical comma-delimited command grammar
// used at the service boundary.
//
// A command string has the form:
//
//	protocolId "," (hexCode | payload) ["," bitWidth ["," repeatCount]]
//
// For short-form protocols the second token is a base-16 scalar code. For
// long-form protocols (raw timings, Pronto hex, GlobalCache, AC state
// blocks) everything after the first comma is a protocol-specific payload
// that the codec package re-parses independently; this parser still records
// the substring so the codecs never depend on how it was tokenized here.
//
// The package also provides the shared numeric value-list parser used by
// the long-form codecs. It uses a two-pass count-then-fill strategy so the
// result slice is allocated at its exact final size.
package command

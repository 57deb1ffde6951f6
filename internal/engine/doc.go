// Package engine ties the command parser, the protocol dispatch table and
// the receive formatter to one pair of transmit/receive devices.
//
// The engine serializes hardware sends through a bounded-wait transmission
// guard: concurrent Send calls never interleave at the hardware boundary,
// and a caller that cannot acquire the guard before its deadline fails
// with ErrLockTimeout instead of blocking forever. Receive polling is
// deliberately not gated by the guard; the receive and transmit lines are
// physically distinct.
//
// The most recent receive report and command echo are held on the engine
// and pushed to OnStatus subscribers (the MQTT bridge and the status
// server); no history is retained.
package engine

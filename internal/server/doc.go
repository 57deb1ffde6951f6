// Package server exposes the engine over HTTP for dashboards and
// debugging.
//
// GET /status returns a JSON snapshot of the engine: device name,
// version, the receive toggle, and the last received and sent reports.
// GET /ws upgrades to a WebSocket and streams every status event as a
// small JSON object {"kind","value"} as it happens. The stream is
// one-way; clients that stop reading are dropped on the next write.
package server

package ir

import (
	"github.com/skoona/sknSensors-IRService/internal/protocol"
)

// Receiver delivers decoded captures from the receive hardware. Capture is
// non-blocking so the engine's poll loop can share its task with command
// handling.
type Receiver interface {
	// Capture returns the next pending capture, or false when nothing has
	// been received since the last call.
	Capture() (*protocol.Capture, bool)
}

// frameGapUS is the silent interval that terminates a captured frame.
// Consumer IR protocols repeat no faster than every ~25ms, so 15ms of
// silence safely closes a frame without splitting long AC transmissions.
const frameGapUS = 15000

// maxFrameEdges caps the durations captured per frame. AC protocols run to
// several hundred edges; beyond this the waveform is noise.
const maxFrameEdges = 1024

// Package bridge connects the transcoding engine to an MQTT broker for
// device integration.
//
// Inbound, the bridge subscribes two settable topics under the device's
// base topic:
//
//	{base}/{device}/command/set  - transcoding command strings
//	{base}/{device}/enabled/set  - receive-report toggle ("true"/"false")
//
// Outbound, it publishes:
//
//	{base}/{device}/result    - per-command outcome ("ok,<echo>" or "error,...")
//	{base}/{device}/sent      - echo of the last transmitted command (retained)
//	{base}/{device}/received  - formatted capture reports (retained)
//	{base}/{device}/enabled   - current toggle state (retained)
//	{base}/{device}/$state    - bridge availability, with an LWT of "lost"
//
// Retained status topics let late subscribers see the last known state
// without waiting for new traffic. Subscriptions are established in the
// connect handler so they are restored automatically on reconnect.
package bridge

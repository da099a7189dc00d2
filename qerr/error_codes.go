// Package qerr holds the structured error codes used for local diagnostics.
// The congestion controller itself has no user-visible failure paths (see
// the CUBIC core's error handling design); these codes exist purely so the
// telemetry relay client can log what went wrong without ever returning an
// error across the PathView/Notify boundary.
package qerr

import "fmt"

// ErrorCode identifies a class of telemetry-relay failure.
type ErrorCode uint16

const (
	// TelemetryUnreachable means the relay socket could not be written to.
	TelemetryUnreachable ErrorCode = iota + 1
	// TelemetryTimeout means no response arrived before the read deadline.
	TelemetryTimeout
	// TelemetryMalformedResponse means the response didn't start with OK or KO.
	TelemetryMalformedResponse
	// TelemetryRejected means the relay replied KO.
	TelemetryRejected
	// TelemetryBacklogged means the local send queue was full and the
	// command was dropped without ever reaching the socket.
	TelemetryBacklogged
)

// If this breaks, add a case below for the new error code.
func (e ErrorCode) String() string {
	switch e {
	case TelemetryUnreachable:
		return "TelemetryUnreachable"
	case TelemetryTimeout:
		return "TelemetryTimeout"
	case TelemetryMalformedResponse:
		return "TelemetryMalformedResponse"
	case TelemetryRejected:
		return "TelemetryRejected"
	case TelemetryBacklogged:
		return "TelemetryBacklogged"
	default:
		return fmt.Sprintf("ErrorCode(%d)", uint16(e))
	}
}

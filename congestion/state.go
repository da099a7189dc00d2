package congestion

import (
	"time"

	"github.com/private-octopus/picocubic/protocol"
)

// algState is the two-state automaton the controller runs per path.
type algState uint8

const (
	// SlowStart grows cwnd by the full acknowledged byte count, with no
	// threshold: it only ends on the first loss or timeout.
	SlowStart algState = iota
	// CongestionAvoidance is terminal: the cubic function, floored by the
	// New-Reno estimate, is the authoritative source of cwnd.
	CongestionAvoidance
)

func (s algState) String() string {
	switch s {
	case SlowStart:
		return "SlowStart"
	case CongestionAvoidance:
		return "CongestionAvoidance"
	default:
		return "Unknown"
	}
}

// Notification is an event delivered by the transport for a path.
type Notification uint8

const (
	// Acknowledgement reports newly-acknowledged bytes.
	Acknowledgement Notification = iota
	// Repeat reports a packet retransmission triggered by loss detection.
	Repeat
	// Timeout reports a retransmission timeout.
	Timeout
	// SpuriousRepeat reports a retransmission that turned out unnecessary.
	SpuriousRepeat
	// RttMeasurement reports a new RTT sample with no other side effect.
	RttMeasurement
)

// State holds everything the cubic state machine remembers between events
// on a single path. One State belongs to exactly one path: see Controller.
type State struct {
	algState algState

	// epochStartTime is the absolute start of the current cubic epoch.
	// The zero time.Time is the sentinel for "no epoch running".
	epochStartTime time.Time

	estimatedNRCwnd protocol.ByteCount
	lastMaxCwnd     protocol.ByteCount
	timeOfOrigin    float64 // K, in 2^-10-second scaled units
	originCwnd      protocol.ByteCount
	lastTargetCwnd  protocol.ByteCount
}

// AlgState returns the name of the controller's current state
// ("SlowStart" or "CongestionAvoidance").
func (s *State) AlgState() string {
	return s.algState.String()
}

// InSlowStart reports whether the controller is still in slow start.
func (s *State) InSlowStart() bool {
	return s.algState == SlowStart
}

// EpochActive reports whether a cubic epoch is currently running.
func (s *State) EpochActive() bool {
	return !s.epochStartTime.IsZero()
}

// LastTargetCwnd is the most recent cubic-function target, before the
// New-Reno floor was applied; exposed for diagnostics and tests.
func (s *State) LastTargetCwnd() protocol.ByteCount {
	return s.lastTargetCwnd
}

// EstimatedNRCwnd is the New-Reno-equivalent window tracked alongside the
// cubic target; exposed for diagnostics and tests.
func (s *State) EstimatedNRCwnd() protocol.ByteCount {
	return s.estimatedNRCwnd
}

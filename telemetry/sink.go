// Package telemetry implements the optional observability sink the CUBIC
// controller may report to: registration and statistic emission over a local
// datagram endpoint, and logging to the local logger. None of it is on the congestion
// control critical path — correctness of cwnd never depends on a Sink being
// present or reachable.
package telemetry

import (
	"context"

	"github.com/private-octopus/picocubic/utils"
)

// Sink is the narrow interface the controller depends on. A nil Sink is
// always valid and means "no telemetry"; callers of Controller.Init pass
// one in explicitly rather than the controller reaching out to a global.
type Sink interface {
	// Register announces this controller instance to the relay. Called
	// once, from Init, fire-and-forget.
	Register(ctx context.Context, confPath string) error
	// Log reports a state transition or loss event at the given level
	// ("debug", "info", or "error"), fire-and-forget.
	Log(ctx context.Context, level, msg string)
	// Stat reports a named numeric sample, fire-and-forget.
	Stat(ctx context.Context, name string, value float64)
}

// NoOp is a Sink that does nothing; useful as an explicit default instead
// of passing nil, when a caller wants to make "no telemetry" visible in
// code rather than implicit.
type NoOp struct{}

func (NoOp) Register(context.Context, string) error { return nil }
func (NoOp) Log(context.Context, string, string)    {}
func (NoOp) Stat(context.Context, string, float64)  {}

// logFailure wraps locally-observed telemetry failures without ever
// propagating them; every call site in this package goes through it.
func logFailure(format string, args ...interface{}) {
	utils.Errorf(format, args...)
}

// logLocal dispatches a Sink.Log call to the matching utils log function.
// Unlike register/stat, log-emit never crosses the wire: the reference
// relay treats it as a local syslog call (collect_agent::send_log),
// entirely separate from its register/stat/reload wire commands.
func logLocal(level, msg string) {
	switch level {
	case "error":
		utils.Errorf("telemetry: %s", msg)
	case "debug":
		utils.Debugf("telemetry: %s", msg)
	default:
		utils.Infof("telemetry: %s", msg)
	}
}

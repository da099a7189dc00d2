package congestion

import (
	"context"
	"fmt"
	"time"

	"github.com/private-octopus/picocubic/congestion/internal/windowhistory"
	"github.com/private-octopus/picocubic/protocol"
	"github.com/private-octopus/picocubic/telemetry"
	"github.com/private-octopus/picocubic/utils"
)

// historyDepth bounds the in-memory cwnd sample history kept for diagnostics
// and tests. It has no bearing on the cubic math.
const historyDepth = 64

// Controller is the per-path CUBIC congestion control instance. Exactly one
// Controller belongs to one PathView at a time: it is created by Init,
// installed into the path's congestion-state slot, and released by Delete.
// Controller carries no locks: the transport guarantees Init/Notify/Delete
// for one path are never called concurrently.
type Controller struct {
	state   State
	minCwnd protocol.ByteCount
	sink    telemetry.Sink
	history *windowhistory.ByteCountWindow
}

// Init allocates a Controller for path, sets it to SlowStart, and writes
// cwinInitial as the path's starting cwnd. sink may be nil for no
// telemetry. If path already owns a Controller it is replaced; callers
// should Delete first if that's not intended.
func Init(path PathView, cwinInitial protocol.ByteCount, sink telemetry.Sink) {
	c := &Controller{
		minCwnd: cwinInitial,
		sink:    sink,
		history: windowhistory.NewByteCountWindow(historyDepth),
	}
	path.SetCongestionState(c)
	path.SetCwnd(cwinInitial)

	if sink != nil {
		if err := sink.Register(context.Background(), "picocubic.conf"); err != nil {
			utils.Errorf("congestion: telemetry register failed: %v", err)
		}
	}
}

// Delete releases path's Controller. Safe to call on a path with no
// Controller installed.
func Delete(path PathView) {
	path.SetCongestionState(nil)
}

// Notify dispatches a transport event to the state machine and commits
// whatever cwnd results. It is a no-op if path has no Controller installed
// (e.g. allocation failed in Init). Pacing is always recomputed afterward,
// matching the reference implementation's unconditional call.
func Notify(
	path PathView,
	notification Notification,
	rttSample time.Duration,
	bytesAcked protocol.ByteCount,
	lostPacketNumber protocol.PacketNumber,
	now time.Time,
) {
	c := path.CongestionState()
	if c == nil {
		return
	}

	switch c.state.algState {
	case SlowStart:
		switch notification {
		case Acknowledgement:
			// Traditional slow start: grow by the full ACK, no threshold.
			path.SetCwnd(path.Cwnd() + bytesAcked)
		case Repeat, Timeout:
			c.emitLog("info", "state transition: SlowStart -> CongestionAvoidance")
			c.state.algState = CongestionAvoidance
			c.processLoss(path)
		}
	case CongestionAvoidance:
		switch notification {
		case Acknowledgement:
			c.processAck(path, now, bytesAcked)
		case Repeat, Timeout:
			c.processLoss(path)
		}
	}

	path.RecomputePacing()
	c.emitStat(path.Cwnd(), now)
}

// processAck implements spec section 4.2.1: application-limited detection,
// epoch (re)start, the cubic target, the growth limit, and the New-Reno
// floor.
func (c *Controller) processAck(path PathView, now time.Time, ackedBytes protocol.ByteCount) {
	cwnd := path.Cwnd()

	if path.BytesInTransit() < cwnd {
		// The sender couldn't fill the window before this ACK: freeze the
		// cubic clock so idle periods don't let the curve race ahead.
		c.state.epochStartTime = time.Time{}
		return
	}

	n := path.StreamCount()

	if c.state.epochStartTime.IsZero() {
		// The ACK reports a state one RTT stale, so back-date the epoch.
		c.state.epochStartTime = now.Add(-path.RTTMin())
		c.state.estimatedNRCwnd = cwnd

		if c.state.lastMaxCwnd <= cwnd {
			c.state.timeOfOrigin = 0
			c.state.originCwnd = cwnd
		} else {
			c.state.timeOfOrigin = cubeRoot(c.state.lastMaxCwnd, cwnd)
			c.state.originCwnd = c.state.lastMaxCwnd
		}
	}

	elapsed := scaledElapsed(now.Sub(c.state.epochStartTime))
	target := CubicTarget(elapsed, c.state.timeOfOrigin, c.state.originCwnd)

	// Growth limit: a single ACK can't raise cwnd by more than half the
	// bytes it acknowledged, guarding against overshoot on a steep curve.
	if limit := cwnd + ackedBytes/2; target > limit {
		target = limit
	}
	c.state.lastTargetCwnd = target

	// New-Reno floor, for TCP-friendliness against competing Reno flows.
	increment := protocol.ByteCount(float64(ackedBytes) * Alpha(n) * float64(DefaultMSS) / float64(c.state.estimatedNRCwnd))
	c.state.estimatedNRCwnd += increment
	if target < c.state.estimatedNRCwnd {
		target = c.state.estimatedNRCwnd
	}

	path.SetCwnd(target)
}

// processLoss implements spec section 4.2.2: fast convergence, epoch reset,
// and the multiplicative decrease floored at minCwnd.
func (c *Controller) processLoss(path PathView) {
	n := path.StreamCount()
	cwnd := path.Cwnd()

	if cwnd+DefaultMSS < c.state.lastMaxCwnd {
		// The previous maximum wasn't re-attained before this loss:
		// evidence of competing traffic, so back off a little more.
		c.state.lastMaxCwnd = protocol.ByteCount(BetaLastMax(n) * float64(cwnd))
	} else {
		c.state.lastMaxCwnd = cwnd
	}

	c.state.epochStartTime = time.Time{}

	newCwnd := protocol.ByteCount(Beta(n) * float64(cwnd))
	if newCwnd < c.minCwnd {
		newCwnd = c.minCwnd
	}
	c.emitLog("info", fmt.Sprintf("loss: cwnd %d -> %d (last_max_cwnd=%d)", cwnd, newCwnd, c.state.lastMaxCwnd))
	path.SetCwnd(newCwnd)
}

// State exposes the controller's internal state for diagnostics and tests.
func (c *Controller) State() *State { return &c.state }

// History returns the recorded cwnd samples, most recent last.
func (c *Controller) History() []windowhistory.Sample {
	if c.history == nil {
		return nil
	}
	return c.history.Samples()
}

func (c *Controller) emitStat(cwnd protocol.ByteCount, now time.Time) {
	if c.history != nil {
		c.history.Push(windowhistory.Sample{At: now, Cwnd: cwnd})
	}
	if c.sink != nil {
		c.sink.Stat(context.Background(), "cwnd", float64(cwnd))
	}
}

// emitLog reports a state transition or loss event to the sink, if any.
func (c *Controller) emitLog(level, msg string) {
	if c.sink != nil {
		c.sink.Log(context.Background(), level, msg)
	}
}

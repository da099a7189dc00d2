package congestion

import (
	"math"
	"time"

	"github.com/private-octopus/picocubic/protocol"
)

// effectiveStreams treats a zero (or otherwise degenerate) stream count as a
// single flow, per the spec's "never divide by zero" rule for a path view
// that hasn't started counting streams yet.
func effectiveStreams(n uint64) float64 {
	if n == 0 {
		return defaultStreamCount
	}
	return float64(n)
}

// Beta is the multiplicative cwnd backoff applied on loss, scaled for n
// concurrent streams emulating n independent CUBIC flows. Beta(1) == 0.7.
func Beta(n uint64) float64 {
	streams := effectiveStreams(n)
	return (streams - 1 + betaConst) / streams
}

// BetaLastMax is the equivalent backoff applied to last_max_cwnd when fast
// convergence kicks in.
func BetaLastMax(n uint64) float64 {
	streams := effectiveStreams(n)
	return (streams - 1 + betaLastMaxConst) / streams
}

// Alpha is the TCP-friendly additive-increase coefficient from CUBIC paper
// section 3.3: 3n^2(1-beta)/(1+beta). The reference C source computes
// (1-beta)/(1-beta), which is identically 1 regardless of beta; that is a
// known defect and is not reproduced here.
func Alpha(n uint64) float64 {
	streams := effectiveStreams(n)
	beta := Beta(n)
	return 3 * streams * streams * (1 - beta) / (1 + beta)
}

// CubicTarget evaluates the cubic window function at the given elapsed time
// (both elapsed and timeOfOrigin are in 2^-10-second scaled units, measured
// from the start of the current epoch). It saturates at 0 rather than
// underflowing when the offset-cubed term exceeds originCwnd.
func CubicTarget(elapsed, timeOfOrigin float64, originCwnd protocol.ByteCount) protocol.ByteCount {
	offset := elapsed - timeOfOrigin
	if offset < 0 {
		offset = -offset
	}
	delta := cubeCongestionWindowScale * offset * offset * offset * float64(DefaultMSS) / cubeScaleDivisor

	if elapsed > timeOfOrigin {
		return originCwnd + protocol.ByteCount(delta)
	}
	if delta >= float64(originCwnd) {
		return 0
	}
	return originCwnd - protocol.ByteCount(delta)
}

// cubeRoot computes K (the state's timeOfOrigin), the time (in the same scaled units as elapsed
// time) at which the cubic curve would have reached lastMaxCwnd starting
// from cwnd at the origin.
func cubeRoot(lastMaxCwnd, cwnd protocol.ByteCount) float64 {
	if lastMaxCwnd <= cwnd {
		return 0
	}
	return math.Cbrt(cubeFactor * float64(lastMaxCwnd-cwnd))
}

// scaledElapsed converts a wall-clock duration since epoch start into the
// 2^-10-second fixed-point unit the cubic function is defined in. The
// reference C source computes this as
// (now - epoch_start_time) << 10 / MICROSEC_PER_SEC, which in C operator
// precedence parses as (now - epoch_start_time) << (10 / MICROSEC_PER_SEC),
// i.e. a shift by zero: a well-known defect in that source. This is the
// paper-correct form: seconds elapsed, scaled by 2^10.
func scaledElapsed(d time.Duration) float64 {
	return d.Seconds() * 1024
}

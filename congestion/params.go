package congestion

import "github.com/private-octopus/picocubic/protocol"

// Scaling constants from the CUBIC paper and the reference picoquic port.
// Time is kept in 2^-10 fractions of a second instead of milliseconds so a
// right shift can stand in for a divide; see cubeScaleDivisor below.
const (
	cubeScale                 = 40
	cubeCongestionWindowScale = 410

	// DefaultMSS is the segment size the cube coefficient is scaled against.
	DefaultMSS = protocol.DefaultTCPMSS

	// AlgorithmID is the 32-bit identifier this algorithm registers under.
	AlgorithmID uint32 = 0x0f0f0f0f

	betaConst         = 0.7
	betaLastMaxConst  = 0.85
	defaultStreamCount = 1
)

// cubeScaleDivisor is 2^cubeScale, i.e. the ">> cubeScale" from the spec
// expressed as a float64 divisor.
var cubeScaleDivisor = float64(uint64(1) << cubeScale)

// cubeFactor = (1<<cubeScale) / cubeCongestionWindowScale / DEFAULT_MSS,
// computed once with the same truncating integer division the reference
// implementation uses.
var cubeFactor = float64((uint64(1) << cubeScale) / cubeCongestionWindowScale / uint64(DefaultMSS))

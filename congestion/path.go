package congestion

import (
	"time"

	"github.com/private-octopus/picocubic/protocol"
)

// PathView is the narrow, strictly-typed view of a transport path the
// controller needs. The transport owns every field; the controller only
// reads bytesInTransit/rttMin/streamCount, and only ever writes cwnd and its
// own congestion state slot.
type PathView interface {
	// Cwnd returns the current congestion window, in bytes.
	Cwnd() protocol.ByteCount
	// SetCwnd commits a new congestion window, in bytes.
	SetCwnd(protocol.ByteCount)
	// BytesInTransit returns bytes sent but not yet acked or declared lost.
	BytesInTransit() protocol.ByteCount
	// RTTMin returns the path's minimum observed RTT.
	RTTMin() time.Duration
	// StreamCount returns the current number of concurrent streams on this
	// path. It MUST be re-read on every call: the transport may change it
	// between notifications, and the controller never mutates it.
	StreamCount() uint64
	// RecomputePacing asks the transport to re-derive its pacing rate from
	// the cwnd just written. The controller calls this unconditionally
	// after every notification, matching the reference implementation.
	RecomputePacing()

	// CongestionState returns the controller instance owned by this path,
	// or nil if none has been allocated (e.g. Init failed, or Delete ran).
	CongestionState() *Controller
	// SetCongestionState installs (or clears, with nil) the controller
	// instance owned by this path.
	SetCongestionState(*Controller)
}

// Path is a minimal, concrete PathView a transport can embed or use
// directly. StreamCount reads through a pointer the transport owns, per the
// "read-through accessor" note on multi-stream counting: the controller
// never owns or mutates the counter itself.
type Path struct {
	cwnd             protocol.ByteCount
	bytesInTransit   protocol.ByteCount
	rttMin           time.Duration
	streamCount      *uint64
	state            *Controller
	pacingRecomputed int

	// OnRecomputePacing, if set, is invoked by RecomputePacing in addition
	// to the internal counter; useful for tests asserting it was called.
	OnRecomputePacing func()
}

// NewPath creates a Path. streamCount may be nil, in which case the path
// behaves as a single-stream path (StreamCount always returns 1).
func NewPath(streamCount *uint64) *Path {
	if streamCount == nil {
		one := uint64(1)
		streamCount = &one
	}
	return &Path{streamCount: streamCount}
}

func (p *Path) Cwnd() protocol.ByteCount           { return p.cwnd }
func (p *Path) SetCwnd(c protocol.ByteCount)       { p.cwnd = c }
func (p *Path) BytesInTransit() protocol.ByteCount { return p.bytesInTransit }
func (p *Path) RTTMin() time.Duration              { return p.rttMin }
func (p *Path) StreamCount() uint64                { return *p.streamCount }

// SetBytesInTransit lets the transport report the current outstanding
// bytes; it has no effect on cwnd by itself.
func (p *Path) SetBytesInTransit(b protocol.ByteCount) { p.bytesInTransit = b }

// SetRTTMin lets the transport report its minimum observed RTT.
func (p *Path) SetRTTMin(rtt time.Duration) { p.rttMin = rtt }

func (p *Path) RecomputePacing() {
	p.pacingRecomputed++
	if p.OnRecomputePacing != nil {
		p.OnRecomputePacing()
	}
}

// PacingRecomputeCount reports how many times RecomputePacing ran; useful
// for tests asserting the "recompute pacing after every notify" invariant.
func (p *Path) PacingRecomputeCount() int { return p.pacingRecomputed }

func (p *Path) CongestionState() *Controller     { return p.state }
func (p *Path) SetCongestionState(c *Controller) { p.state = c }

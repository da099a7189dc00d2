// The ByteCountWindow instantiation (Item=protocol.ByteCount) of the container
// sketched in template.go. The Sample type and the methods below are written
// out here; template.go does not contain them.

package windowhistory

import (
	"time"

	"github.com/private-octopus/picocubic/protocol"
)

// Sample pairs a wall-clock time with the cwnd committed at that time.
type Sample struct {
	At   time.Time
	Cwnd protocol.ByteCount
}

// ByteCountWindow is a fixed-capacity ring buffer of the most recent cwnd
// samples, read back through Controller.History for diagnostics and to let
// tests assert monotonicity over a window.
type ByteCountWindow struct {
	buf  []Sample
	next int
	full bool
}

// NewByteCountWindow allocates a window holding up to capacity samples.
func NewByteCountWindow(capacity int) *ByteCountWindow {
	return &ByteCountWindow{buf: make([]Sample, capacity)}
}

// Push records a new sample, overwriting the oldest one once the window is
// full. A zero-capacity window silently discards every sample.
func (w *ByteCountWindow) Push(s Sample) {
	if len(w.buf) == 0 {
		return
	}
	w.buf[w.next] = s
	w.next = (w.next + 1) % len(w.buf)
	if w.next == 0 {
		w.full = true
	}
}

// Samples returns the recorded samples in chronological order.
func (w *ByteCountWindow) Samples() []Sample {
	if !w.full {
		out := make([]Sample, w.next)
		copy(out, w.buf[:w.next])
		return out
	}
	out := make([]Sample, len(w.buf))
	copy(out, w.buf[w.next:])
	copy(out[len(w.buf)-w.next:], w.buf[:w.next])
	return out
}

// Len reports how many samples are currently stored.
func (w *ByteCountWindow) Len() int {
	if w.full {
		return len(w.buf)
	}
	return w.next
}

package congestion

import (
	"sync"
	"time"

	"github.com/private-octopus/picocubic/protocol"
	"github.com/private-octopus/picocubic/telemetry"
)

// Algorithm is the record a transport registers and invokes: an algorithm
// identifier plus the three lifecycle functions. It owns no state of its
// own beyond what's closed over at construction (the initial window and
// the optional telemetry sink) — all per-path state lives in the
// PathView's own congestion-state slot.
type Algorithm struct {
	AlgorithmID uint32
	Init        func(path PathView)
	Notify      func(path PathView, notification Notification, rttSample time.Duration, bytesAcked protocol.ByteCount, lostPacketNumber protocol.PacketNumber, now time.Time)
	Delete      func(path PathView)
}

// NewCubicAlgorithm builds the registerable CUBIC algorithm record. cwnInitial
// becomes both the starting cwnd and the floor cwnd never drops below; sink
// may be nil for no telemetry.
func NewCubicAlgorithm(cwnInitial protocol.ByteCount, sink telemetry.Sink) *Algorithm {
	return &Algorithm{
		AlgorithmID: AlgorithmID,
		Init: func(path PathView) {
			Init(path, cwnInitial, sink)
		},
		Notify: func(path PathView, notification Notification, rttSample time.Duration, bytesAcked protocol.ByteCount, lostPacketNumber protocol.PacketNumber, now time.Time) {
			Notify(path, notification, rttSample, bytesAcked, lostPacketNumber, now)
		},
		Delete: Delete,
	}
}

// Registry maps algorithm IDs to Algorithm records, letting a transport
// select a congestion controller per connection or per path.
type Registry struct {
	mu   sync.RWMutex
	byID map[uint32]*Algorithm
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[uint32]*Algorithm)}
}

// Register adds (or replaces) the Algorithm under its AlgorithmID.
func (r *Registry) Register(a *Algorithm) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.AlgorithmID] = a
}

// Lookup returns the Algorithm registered under id, if any.
func (r *Registry) Lookup(id uint32) (*Algorithm, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	return a, ok
}

//go:build genny

// This is a genny template for the ring buffer in this package. It declares
// the container types only: it has no methods, and its itemSample (an int64
// time plus a value) differs from the Sample type in bytecount_window.go, so
// running genny on it does not reproduce that file. It never builds on its
// own (see the build tag above).
package windowhistory

import "github.com/cheekybits/genny/generic"

// Item is the genny placeholder type substituted with protocol.ByteCount.
type Item generic.Type

// itemSample pairs a sample time with one Item value.
type itemSample struct {
	at    int64
	value Item
}

// ItemWindow is a fixed-capacity ring buffer of the most recent Item
// samples, overwriting the oldest entry once full.
type ItemWindow struct {
	buf  []itemSample
	next int
	full bool
}

//go:build !windows

package telemetry

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// sendBufferBytes is a generous send buffer: telemetry bursts should never
// apply backpressure to the datapath, so we'd rather the kernel buffer a lot
// of datagrams than have WriteTo block.
const sendBufferBytes = 1 << 20

// setSendBuffer is a net.ListenConfig.Control hook that best-effort widens
// the socket's send buffer. Any failure is logged and otherwise ignored: a
// telemetry socket that couldn't be tuned is still usable, just more likely
// to drop under load, which is an acceptable failure mode for a sink whose
// unavailability must never affect the datapath.
func setSendBuffer(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUF, sendBufferBytes)
	})
	if err != nil {
		return nil
	}
	if sockErr != nil {
		logFailure("telemetry: SO_SNDBUF tuning failed: %v", sockErr)
	}
	return nil
}

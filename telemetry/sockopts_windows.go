//go:build windows

package telemetry

import "syscall"

// setSendBuffer is a no-op on windows; golang.org/x/sys/unix doesn't cover
// it, and the buffer size is a tuning knob, not a correctness requirement.
func setSendBuffer(_, _ string, _ syscall.RawConn) error {
	return nil
}

package launcher

import (
	"errors"
	"syscall"
)

// osErrorCode extracts the OS-level error number from a process-creation
// failure. Returns -1 when the cause carries no errno (e.g. a PATH lookup
// that failed without touching the OS).
func osErrorCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return -1
}

//go:build windows

package launcher

import (
	"github.com/core-tools/hsu-station/pkg/logging"
)

// WaitSupported reports whether WaitFor blocks on this target. On Windows
// the station detaches from its launcher, so there is nothing to wait on.
const WaitSupported = false

func waitForProcess(outcome Outcome, logger logging.Logger) error {
	logger.Warnf("Process wait requested but not supported on windows, PID: %d", outcome.PID)
	return ErrWaitNotSupported
}

//go:build !windows

package launcher

import (
	domainerrors "github.com/core-tools/hsu-station/pkg/errors"
	"github.com/core-tools/hsu-station/pkg/logging"
)

// WaitSupported reports whether WaitFor blocks on this target.
const WaitSupported = true

func waitForProcess(outcome Outcome, logger logging.Logger) error {
	logger.Infof("Waiting for station process to exit, PID: %d", outcome.PID)

	state, err := outcome.Process.Wait()
	if err != nil {
		return domainerrors.NewProcessError("failed to wait for station process", err).WithContext("pid", outcome.PID)
	}

	logger.Infof("Station process exited, PID: %d, state: %v", outcome.PID, state)
	return nil
}

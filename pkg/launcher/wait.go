package launcher

import (
	"errors"

	domainerrors "github.com/core-tools/hsu-station/pkg/errors"
)

// ErrWaitNotSupported is returned by WaitFor on targets where blocking on a
// child process has no meaningful semantics. Callers detect the missing
// capability with errors.Is rather than observing a silent no-op.
var ErrWaitNotSupported = errors.New("process wait is not supported on this target")

// WaitFor blocks until the launched process exits. Supported on POSIX
// targets only (see WaitSupported); there is no timeout or cancellation, a
// documented limitation of the blocking wait.
func (l *Launcher) WaitFor(outcome Outcome) error {
	if !outcome.Succeeded || outcome.Process == nil {
		return domainerrors.NewValidationError("cannot wait on a process that was not launched", nil)
	}
	return waitForProcess(outcome, l.logger)
}

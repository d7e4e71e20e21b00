//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

const exeSuffix = ".exe"

// setupProcessAttributes configures Windows-specific process attributes.
// The station gets its own process group; no console or handles are
// inherited from the bridge.
func setupProcessAttributes(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}

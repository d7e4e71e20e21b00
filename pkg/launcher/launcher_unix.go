//go:build !windows

package launcher

import (
	"os/exec"
	"syscall"
)

const exeSuffix = ""

// setupProcessAttributes configures Unix-specific process attributes.
// The station runs in its own process group so that signals aimed at the
// bridge never reach it.
func setupProcessAttributes(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

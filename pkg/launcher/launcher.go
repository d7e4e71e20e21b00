package launcher

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/core-tools/hsu-station/pkg/logging"
	"github.com/core-tools/hsu-station/pkg/paths"
)

// InstallDirEnvVar names the environment variable that carries the station
// installation bin directory. It is set by the product start scripts and read
// once by the composition root.
const InstallDirEnvVar = "IMGSTATIONEXE"

// DefaultExecutable is the fixed base name of the station executable; the
// platform suffix is appended at launch time.
const DefaultExecutable = "ImgStation"

// Config carries the launch configuration. The install directory is sourced
// from InstallDirEnvVar (or a config file override) by the composition root;
// the launcher itself never reads the environment.
type Config struct {
	InstallDir string `yaml:"install_dir,omitempty"`
	Executable string `yaml:"executable,omitempty"`
}

// Outcome is the result of a single launch attempt. Launch failures are
// signaled through the outcome, not through an error: the caller decides
// whether a failed launch aborts the session sequence.
type Outcome struct {
	PID       int
	OSError   int
	Succeeded bool
	Process   *os.Process
}

type Launcher struct {
	config Config
	logger logging.Logger
}

func NewLauncher(config Config, logger logging.Logger) *Launcher {
	return &Launcher{
		config: config,
		logger: logger,
	}
}

// Launch appends the platform executable suffix to nameOrPath and starts the
// process with default creation flags and no inherited handles. An empty
// argument fails fast without attempting a spawn.
func (l *Launcher) Launch(nameOrPath string) Outcome {
	if nameOrPath == "" {
		l.logger.Errorf("Executable name cannot be empty")
		return Outcome{}
	}

	exe := nameOrPath + exeSuffix

	cmd := exec.Command(exe)
	setupProcessAttributes(cmd)

	if err := cmd.Start(); err != nil {
		code := osErrorCode(err)
		l.logger.Errorf("Process creation failed, executable: %s, os error: %d (%v)", exe, code, err)
		return Outcome{OSError: code}
	}

	l.logger.Infof("Launched station process, executable: %s, PID: %d", exe, cmd.Process.Pid)

	return Outcome{
		PID:       cmd.Process.Pid,
		Succeeded: true,
		Process:   cmd.Process,
	}
}

// LaunchStation builds the full station executable path from the configured
// installation directory and delegates to Launch. A missing installation
// directory is reported and yields a failed outcome without a spawn attempt.
func (l *Launcher) LaunchStation() Outcome {
	dir := l.config.InstallDir
	if dir == "" {
		l.logger.Errorf("%s is not set", InstallDirEnvVar)
		return Outcome{}
	}

	dir = paths.Normalize(dir)
	if dir == "" {
		l.logger.Errorf("Failed to resolve station install directory")
		return Outcome{}
	}

	exe := l.config.Executable
	if exe == "" {
		exe = DefaultExecutable
	}

	return l.Launch(filepath.Join(dir, exe))
}

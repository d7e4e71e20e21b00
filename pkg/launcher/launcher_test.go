package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"testing"

	domainerrors "github.com/core-tools/hsu-station/pkg/errors"
	"github.com/core-tools/hsu-station/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) LogLevelf(level int, format string, args ...interface{}) {
	r.record(format, args...)
}
func (r *recordingLogger) Debugf(msg string, args ...interface{}) { r.record(msg, args...) }
func (r *recordingLogger) Infof(msg string, args ...interface{})  { r.record(msg, args...) }
func (r *recordingLogger) Warnf(msg string, args ...interface{})  { r.record(msg, args...) }
func (r *recordingLogger) Errorf(msg string, args ...interface{}) { r.record(msg, args...) }

func (r *recordingLogger) contains(substr string) bool {
	for _, line := range r.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

var _ logging.Logger = &recordingLogger{}

func TestLaunchEmptyExecutable(t *testing.T) {
	logger := &recordingLogger{}
	l := NewLauncher(Config{}, logger)

	outcome := l.Launch("")

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, 0, outcome.PID)
	assert.Nil(t, outcome.Process)
}

func TestLaunchNonexistentPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("errno value is unix-specific")
	}

	logger := &recordingLogger{}
	l := NewLauncher(Config{}, logger)

	outcome := l.Launch("/nonexistent/dir/ImgStation")

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, 0, outcome.PID)
	assert.Equal(t, int(syscall.ENOENT), outcome.OSError)
}

func TestLaunchStationMissingInstallDir(t *testing.T) {
	logger := &recordingLogger{}
	l := NewLauncher(Config{}, logger)

	outcome := l.LaunchStation()

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, 0, outcome.PID)
	assert.True(t, logger.contains(InstallDirEnvVar), "missing variable must be named in the log")
}

func TestLaunchAndWait(t *testing.T) {
	if !WaitSupported {
		t.Skip("wait not supported on this target")
	}

	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("no 'true' binary available")
	}

	logger := &recordingLogger{}
	l := NewLauncher(Config{}, logger)

	outcome := l.Launch(path)
	require.True(t, outcome.Succeeded)
	assert.NotZero(t, outcome.PID)
	require.NotNil(t, outcome.Process)

	err = l.WaitFor(outcome)
	assert.NoError(t, err)
}

func TestWaitForUnlaunchedOutcome(t *testing.T) {
	logger := &recordingLogger{}
	l := NewLauncher(Config{}, logger)

	err := l.WaitFor(Outcome{})

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidationError(err))
}

func TestLaunchStationUsesConfiguredExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("errno value is unix-specific")
	}

	logger := &recordingLogger{}
	l := NewLauncher(Config{InstallDir: "/nonexistent/install", Executable: "CustomStation"}, logger)

	outcome := l.LaunchStation()

	assert.False(t, outcome.Succeeded)
	assert.True(t, logger.contains("CustomStation"), "configured executable name must be used")
}

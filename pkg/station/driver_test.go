package station

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/core-tools/hsu-station/pkg/errors"
	"github.com/core-tools/hsu-station/pkg/launcher"
	"github.com/core-tools/hsu-station/pkg/logging"
	"github.com/core-tools/hsu-station/pkg/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewLogger("test , ", logging.LogFuncs{})
}

// fakeGateway scripts the status pairs returned per operation and records
// call order.
type fakeGateway struct {
	connectTransport    status.TransportStatus
	connectApp          status.AppStatus
	disconnectTransport status.TransportStatus
	disconnectApp       status.AppStatus
	calls               []string
}

func (f *fakeGateway) Connect(ctx context.Context) (status.TransportStatus, status.AppStatus) {
	f.calls = append(f.calls, "connect")
	return f.connectTransport, f.connectApp
}

func (f *fakeGateway) Disconnect(ctx context.Context) (status.TransportStatus, status.AppStatus) {
	f.calls = append(f.calls, "disconnect")
	return f.disconnectTransport, f.disconnectApp
}

var _ Contract = &fakeGateway{}

func newTestDriver(options DriverOptions, launcherConfig launcher.Config, gateway Contract, out *bytes.Buffer) *Driver {
	logger := testLogger()
	l := launcher.NewLauncher(launcherConfig, logger)
	return NewDriver(options, l, gateway, status.NewValidator(out), logger)
}

func TestDriverFullSuccess(t *testing.T) {
	if !launcher.WaitSupported {
		t.Skip("wait not supported on this target")
	}

	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("no 'true' binary available")
	}

	gateway := &fakeGateway{}
	var out bytes.Buffer
	driver := newTestDriver(
		DriverOptions{WaitForExit: true},
		launcher.Config{InstallDir: filepath.Dir(path), Executable: filepath.Base(path)},
		gateway,
		&out,
	)

	ok := driver.Run(context.Background())

	assert.True(t, ok)
	assert.Equal(t, []string{"connect", "disconnect"}, gateway.calls)
	assert.Empty(t, out.String(), "no diagnostics on the success path")
}

func TestDriverDisconnectsAfterFailedConnect(t *testing.T) {
	gateway := &fakeGateway{
		connectApp: status.AppStatus{Code: 0x80000002, Message: "session rejected"},
	}
	var out bytes.Buffer
	driver := newTestDriver(DriverOptions{}, launcher.Config{}, gateway, &out)

	ok := driver.Run(context.Background())

	assert.False(t, ok)
	assert.Equal(t, []string{"connect", "disconnect"}, gateway.calls, "disconnect must run even after a failed connect")
	assert.Contains(t, out.String(), "0x80000002")
}

func TestDriverFailedDisconnect(t *testing.T) {
	gateway := &fakeGateway{
		disconnectTransport: status.TransportFailure,
	}
	var out bytes.Buffer
	driver := newTestDriver(DriverOptions{}, launcher.Config{}, gateway, &out)

	ok := driver.Run(context.Background())

	assert.False(t, ok)
	assert.Contains(t, out.String(), "0x80000001")
}

func TestDriverReadyFailureDoesNotAbort(t *testing.T) {
	gateway := &fakeGateway{}
	var out bytes.Buffer
	options := DriverOptions{
		Ready: func(ctx context.Context) error {
			return errors.NewTransportError("ping timed out", nil)
		},
	}
	driver := newTestDriver(options, launcher.Config{}, gateway, &out)

	ok := driver.Run(context.Background())

	assert.True(t, ok, "a failed readiness probe must not abort the sequence")
	assert.Equal(t, []string{"connect", "disconnect"}, gateway.calls)
}

func TestDriverLaunchFailureStillRunsSession(t *testing.T) {
	gateway := &fakeGateway{}
	var out bytes.Buffer
	// Empty launcher config: the install dir is missing, so the launch fails.
	driver := newTestDriver(DriverOptions{}, launcher.Config{}, gateway, &out)

	ok := driver.Run(context.Background())

	assert.True(t, ok, "session result is independent of the launch outcome")
	require.Len(t, gateway.calls, 2)
}

package station

import (
	"context"
	"errors"

	"github.com/core-tools/hsu-station/pkg/launcher"
	"github.com/core-tools/hsu-station/pkg/logging"
	"github.com/core-tools/hsu-station/pkg/status"
)

// DriverOptions tunes a single bootstrap-and-session run.
type DriverOptions struct {
	// WaitForExit blocks after the session until the launched station
	// process terminates. Ignored when the launch failed; a no-op capability
	// on targets where process wait is not supported.
	WaitForExit bool

	// Ready, when set, is called between launch and connect to wait for the
	// station's control plane to come up (typically a bounded retry ping).
	// A ready failure is reported but does not abort the sequence: the
	// connect itself produces the transport failure for the validator.
	Ready func(ctx context.Context) error
}

// Driver runs the bootstrap sequence: launch the station, establish a
// session, validate every operation, and tear the session down again.
type Driver struct {
	options   DriverOptions
	launcher  *launcher.Launcher
	gateway   Contract
	validator *status.Validator
	logger    logging.Logger
}

func NewDriver(options DriverOptions, launcher *launcher.Launcher, gateway Contract, validator *status.Validator, logger logging.Logger) *Driver {
	return &Driver{
		options:   options,
		launcher:  launcher,
		gateway:   gateway,
		validator: validator,
		logger:    logger,
	}
}

// Run executes one full sequence and reports whether every session operation
// validated. Launch failures are reported but do not abort the run: the
// station may already be running from an earlier start. Disconnect is always
// attempted, even after a failed connect, so a half-open session is never
// leaked. There is no retry of failed launches.
func (d *Driver) Run(ctx context.Context) bool {
	outcome := d.launcher.LaunchStation()
	if !outcome.Succeeded {
		d.logger.Warnf("Station launch failed, will try to reach an already-running station")
	}

	if d.options.Ready != nil {
		if err := d.options.Ready(ctx); err != nil {
			d.logger.Errorf("Station control plane not reachable: %v", err)
		}
	}

	transport, app := d.gateway.Connect(ctx)
	connected := d.validator.Validate(transport, app)
	if connected {
		d.logger.Infof("Session established")
	}

	// Application logic against the established session goes here.

	transport, app = d.gateway.Disconnect(ctx)
	disconnected := d.validator.Validate(transport, app)
	if disconnected {
		d.logger.Infof("Session closed")
	}

	d.waitForStation(outcome)

	return connected && disconnected
}

func (d *Driver) waitForStation(outcome launcher.Outcome) {
	if !d.options.WaitForExit || !outcome.Succeeded {
		return
	}

	if err := d.launcher.WaitFor(outcome); err != nil {
		if errors.Is(err, launcher.ErrWaitNotSupported) {
			d.logger.Warnf("Waiting for station exit is not supported on this target")
			return
		}
		d.logger.Errorf("Failed to wait for station exit: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	coreControl "github.com/core-tools/hsu-core/pkg/control"
	coreDomain "github.com/core-tools/hsu-core/pkg/domain"
	coreLogging "github.com/core-tools/hsu-core/pkg/logging"

	stationControl "github.com/core-tools/hsu-station/pkg/control"
	"github.com/core-tools/hsu-station/pkg/launcher"
	stationLogging "github.com/core-tools/hsu-station/pkg/logging"
	"github.com/core-tools/hsu-station/pkg/station"
	"github.com/core-tools/hsu-station/pkg/status"

	flags "github.com/jessevdk/go-flags"
)

type flagOptions struct {
	ConfigFile string `long:"config" description:"path to the bridge configuration file"`
	InstallDir string `long:"install-dir" description:"station install directory (overrides IMGSTATIONEXE)"`
	Port       int    `long:"port" description:"station control port"`
	Wait       bool   `long:"wait" description:"wait for the station process to exit after the session"`
	LogLevel   string `long:"log-level" description:"log level: debug, info, warn, error"`
}

func logPrefix(module string) string {
	return fmt.Sprintf("module: %s-client , ", module)
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v", err)
		os.Exit(1)
	}

	config := station.DefaultConfig()
	if opts.ConfigFile != "" {
		config, err = station.LoadConfigFromFile(opts.ConfigFile)
		if err != nil {
			fmt.Printf("Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags override the file; the environment variable is the fallback for
	// the install directory. This is the only place the environment is read.
	if opts.InstallDir != "" {
		config.Station.InstallDir = opts.InstallDir
	}
	if config.Station.InstallDir == "" {
		config.Station.InstallDir = os.Getenv(launcher.InstallDirEnvVar)
	}
	if opts.Port != 0 {
		config.Control.Port = opts.Port
	}
	if opts.Wait {
		config.Station.WaitForExit = true
	}
	if opts.LogLevel != "" {
		config.LogLevel = opts.LogLevel
	}

	if err := station.ValidateConfig(config); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	zapConfig := stationLogging.DefaultZapConfig()
	zapConfig.Level = config.LogLevel
	logger := stationLogging.NewZapLogger(zapConfig)

	logger.Infof("opts: %+v", opts)
	logger.Infof("Starting...")

	coreLogger := coreLogging.NewLogger(
		logPrefix("hsu-core"), coreLogging.LogFuncs{
			Debugf: logger.Debugf,
			Infof:  logger.Infof,
			Warnf:  logger.Warnf,
			Errorf: logger.Errorf,
		})
	stationLogger := stationLogging.NewLogger(
		logPrefix("hsu-station"), stationLogging.LogFuncs{
			Debugf: logger.Debugf,
			Infof:  logger.Infof,
			Warnf:  logger.Warnf,
			Errorf: logger.Errorf,
		})

	coreConnectionOptions := coreControl.ConnectionOptions{
		AttachPort: config.Control.Port,
	}
	coreConnection, err := coreControl.NewConnection(coreConnectionOptions, coreLogger)
	if err != nil {
		logger.Errorf("Failed to create core connection: %v", err)
		return
	}

	coreClientGateway := coreControl.NewGRPCClientGateway(coreConnection.GRPC(), coreLogger)
	stationClientGateway := stationControl.NewGRPCClientGateway(coreConnection.GRPC(), stationLogger)

	ctx := context.Background()

	retryPingOptions := coreDomain.RetryPingOptions{
		RetryAttempts: config.Control.RetryAttempts,
		RetryInterval: config.Control.RetryInterval,
	}

	driverOptions := station.DriverOptions{
		WaitForExit: config.Station.WaitForExit,
		Ready: func(ctx context.Context) error {
			return coreDomain.RetryPing(ctx, coreClientGateway, retryPingOptions, coreLogger)
		},
	}

	stationLauncher := launcher.NewLauncher(launcher.Config{
		InstallDir: config.Station.InstallDir,
		Executable: config.Station.Executable,
	}, stationLogger)

	validator := status.NewValidator(os.Stdout)

	driver := station.NewDriver(driverOptions, stationLauncher, stationClientGateway, validator, stationLogger)

	// Session validation failures are reported through diagnostics; the
	// process exit code stays 0 either way.
	if driver.Run(ctx) {
		logger.Infof("Done")
	} else {
		logger.Infof("Completed with errors")
	}
}

// stationsim stands in for the real station application during integration
// work: it serves the core ping service plus the station session service on
// the given port and accepts a single session at a time.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	coreControl "github.com/core-tools/hsu-core/pkg/control"
	coreDomain "github.com/core-tools/hsu-core/pkg/domain"
	coreLogging "github.com/core-tools/hsu-core/pkg/logging"

	stationControl "github.com/core-tools/hsu-station/pkg/control"
	stationLogging "github.com/core-tools/hsu-station/pkg/logging"
	"github.com/core-tools/hsu-station/pkg/status"

	flags "github.com/jessevdk/go-flags"
)

type flagOptions struct {
	Port        int `long:"port" description:"port to listen on"`
	RunDuration int `long:"run-duration" description:"Duration in seconds to run the simulator (debug feature)"`
}

const (
	codeSessionActive   = 0x80000002 // Connect while a session is already active
	codeNoActiveSession = 0x80000005 // Disconnect without an active session
)

// sessionHandler implements station.Handler with single-session semantics.
type sessionHandler struct {
	mutex  sync.Mutex
	active bool
	logger stationLogging.Logger
}

func (h *sessionHandler) Connect(ctx context.Context) status.AppStatus {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.active {
		h.logger.Warnf("Connect rejected, session already active")
		return status.AppStatus{Code: codeSessionActive, Message: "session already active"}
	}

	h.active = true
	h.logger.Infof("Session opened")
	return status.AppStatus{}
}

func (h *sessionHandler) Disconnect(ctx context.Context) status.AppStatus {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if !h.active {
		h.logger.Warnf("Disconnect rejected, no active session")
		return status.AppStatus{Code: codeNoActiveSession, Message: "no active session"}
	}

	h.active = false
	h.logger.Infof("Session closed")
	return status.AppStatus{}
}

func logPrefix(module string) string {
	return fmt.Sprintf("module: %s-server , ", module)
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

	logger := stationLogging.NewZapLogger(stationLogging.DefaultZapConfig())

	logger.Infof("opts: %+v", opts)

	if opts.Port == 0 {
		fmt.Println("Port is required")
		os.Exit(1)
	}

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

	serverOptions := coreControl.ServerOptions{
		Port: opts.Port,
	}
	server, err := coreControl.NewServer(serverOptions, coreLogger)
	if err != nil {
		logger.Errorf("Failed to create server: %v", err)
		os.Exit(1)
	}

	coreHandler := coreDomain.NewDefaultHandler(coreLogger)
	coreControl.RegisterGRPCServerHandler(server.GRPC(), coreHandler, coreLogger)

	stationHandler := &sessionHandler{logger: stationLogger}
	stationControl.RegisterGRPCServerHandler(server.GRPC(), stationHandler, stationLogger)

	if opts.RunDuration > 0 {
		go func() {
			time.Sleep(time.Duration(opts.RunDuration) * time.Second)
			logger.Infof("Run duration elapsed, exiting")
			os.Exit(0)
		}()
	}

	server.Run(func() {
		logger.Infof("Simulator shutting down...")
	})
}

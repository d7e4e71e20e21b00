package control

import (
	"context"

	"github.com/core-tools/hsu-station/pkg/generated/api/proto"
	"github.com/core-tools/hsu-station/pkg/logging"
	"github.com/core-tools/hsu-station/pkg/station"
	"github.com/core-tools/hsu-station/pkg/status"

	"google.golang.org/grpc"
)

// RegisterGRPCServerHandler serves a station.Handler over the generated
// station service. Used by the station simulator; the real station ships its
// own server.
func RegisterGRPCServerHandler(grpcServerRegistrar grpc.ServiceRegistrar, handler station.Handler, logger logging.Logger) {
	proto.RegisterStationServiceServer(grpcServerRegistrar, &grpcServerHandler{
		handler: handler,
		logger:  logger,
	})
}

type grpcServerHandler struct {
	proto.UnimplementedStationServiceServer
	handler station.Handler
	logger  logging.Logger
}

func (h *grpcServerHandler) Connect(ctx context.Context, connectRequest *proto.ConnectRequest) (*proto.SessionStatus, error) {
	appStatus := h.handler.Connect(ctx)
	h.logger.Debugf("Connect server handler done, code: 0x%08x", appStatus.ErrorCode())
	return sessionStatusResponse(appStatus), nil
}

func (h *grpcServerHandler) Disconnect(ctx context.Context, disconnectRequest *proto.DisconnectRequest) (*proto.SessionStatus, error) {
	appStatus := h.handler.Disconnect(ctx)
	h.logger.Debugf("Disconnect server handler done, code: 0x%08x", appStatus.ErrorCode())
	return sessionStatusResponse(appStatus), nil
}

func sessionStatusResponse(appStatus status.AppStatus) *proto.SessionStatus {
	return &proto.SessionStatus{
		ErrorCode:    appStatus.ErrorCode(),
		ErrorMessage: appStatus.ErrorString(),
	}
}

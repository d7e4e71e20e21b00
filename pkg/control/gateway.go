package control

import (
	"context"

	"github.com/core-tools/hsu-station/pkg/generated/api/proto"
	"github.com/core-tools/hsu-station/pkg/logging"
	"github.com/core-tools/hsu-station/pkg/station"
	"github.com/core-tools/hsu-station/pkg/status"

	"google.golang.org/grpc"
	grpccodes "google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// NewGRPCClientGateway adapts the generated station service client to the
// station.Contract. RPC failures are folded into the transport layer of the
// status pair; the application layer comes from the station's response.
func NewGRPCClientGateway(grpcClientConnection grpc.ClientConnInterface, logger logging.Logger) station.Contract {
	grpcClient := proto.NewStationServiceClient(grpcClientConnection)
	return &grpcClientGateway{
		grpcClient: grpcClient,
		logger:     logger,
	}
}

type grpcClientGateway struct {
	grpcClient proto.StationServiceClient
	logger     logging.Logger
}

func (gw *grpcClientGateway) Connect(ctx context.Context) (status.TransportStatus, status.AppStatus) {
	response, err := gw.grpcClient.Connect(ctx, &proto.ConnectRequest{})
	if err != nil {
		gw.logger.Errorf("Connect client gateway: %v", err)
		return transportStatusFromError(err), status.AppStatus{}
	}
	gw.logger.Debugf("Connect client gateway done")
	return status.TransportSuccess, appStatusFromResponse(response)
}

func (gw *grpcClientGateway) Disconnect(ctx context.Context) (status.TransportStatus, status.AppStatus) {
	response, err := gw.grpcClient.Disconnect(ctx, &proto.DisconnectRequest{})
	if err != nil {
		gw.logger.Errorf("Disconnect client gateway: %v", err)
		return transportStatusFromError(err), status.AppStatus{}
	}
	gw.logger.Debugf("Disconnect client gateway done")
	return status.TransportSuccess, appStatusFromResponse(response)
}

// transportStatusFromError derives a non-success transport status from an
// RPC error: the failure bit plus the gRPC status code.
func transportStatusFromError(err error) status.TransportStatus {
	code := grpcstatus.Code(err)
	if code == grpccodes.OK {
		return status.TransportFailure
	}
	return status.TransportStatus(0x80000000 | uint32(code))
}

func appStatusFromResponse(response *proto.SessionStatus) status.AppStatus {
	return status.AppStatus{
		Code:    response.GetErrorCode(),
		Message: response.GetErrorMessage(),
	}
}

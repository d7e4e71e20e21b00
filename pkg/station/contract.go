package station

import (
	"context"

	"github.com/core-tools/hsu-station/pkg/status"
)

// Contract is the client-side view of the station's remote session API.
// Every operation yields the two-layer status pair: the transport status of
// the control-channel call and the application status the station reported.
// Failures never surface as Go errors here; the validator decides what a
// failed pair means for the session sequence.
type Contract interface {
	Connect(ctx context.Context) (status.TransportStatus, status.AppStatus)
	Disconnect(ctx context.Context) (status.TransportStatus, status.AppStatus)
}

// Handler is the server-side view, implemented by the station (or its
// simulator). The transport layer is the RPC machinery itself, so handlers
// deal in application status only.
type Handler interface {
	Connect(ctx context.Context) status.AppStatus
	Disconnect(ctx context.Context) status.AppStatus
}

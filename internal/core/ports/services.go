package ports

import (
	"context"

	"github.com/labreserve/switch-console/internal/core/domain"
)

// ReserveInput carries a reservation request. EndDate uses domain.DateLayout.
type ReserveInput struct {
	SwitchID  int
	EndDate   string
	Exclusive bool
}

type SwitchService interface {
	GetAll(ctx context.Context) domain.Result[[]domain.Switch]
	// Reserve returns the backend's confirmation message. Unless Exclusive is
	// set the backend may add the caller to an already reserved switch.
	Reserve(ctx context.Context, in ReserveInput) domain.Result[string]
	// Release ends the caller's reservation. cleanup asks the backend to
	// disconnect the switch's ports as part of the release.
	Release(ctx context.Context, switchID int, cleanup bool) domain.Result[string]
}

type ReservationService interface {
	GetAll(ctx context.Context) domain.Result[[]domain.Reservation]
}

// PortService lists ports and links pairs of them. Connect and Disconnect
// return the backend's confirmation message.
type PortService interface {
	GetAll(ctx context.Context) domain.Result[[]domain.Port]
	GetBySwitch(ctx context.Context, switchID int) domain.Result[[]domain.Port]
	Connect(ctx context.Context, portA, portB int) domain.Result[string]
	Disconnect(ctx context.Context, portA, portB int) domain.Result[string]
}

type UserService interface {
	GetAll(ctx context.Context) domain.Result[[]domain.User]
	GetByID(ctx context.Context, id int) domain.Result[domain.User]
}

type TopologyService interface {
	Share(ctx context.Context, targetUsername string) domain.Result[string]
	GetShared(ctx context.Context) domain.Result[[]domain.TopologyShare]
	Unshare(ctx context.Context, shareID int) domain.Result[string]
}

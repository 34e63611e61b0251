package service

import (
	"context"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/core/ports"
)

type ReservationService struct {
	backend ports.Dispatcher
}

func NewReservationService(backend ports.Dispatcher) *ReservationService {
	return &ReservationService{backend: backend}
}

func (s *ReservationService) GetAll(ctx context.Context) domain.Result[[]domain.Reservation] {
	raw := s.backend.Dispatch(ctx, request(endpoint.ListReservation, "fetch reservations", nil))
	return decodeList[domain.Reservation](raw, "fetch reservations", "reservations")
}

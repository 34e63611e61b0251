package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/core/ports"
)

type reserveBody struct {
	Switch  int    `json:"switch"`
	EndDate string `json:"end_date,omitempty"`
	// Confirmation 0 tells the backend to refuse a switch someone else
	// already holds. Omitted, the caller joins the existing reservation.
	Confirmation *int `json:"confirmation,omitempty"`
}

type releaseBody struct {
	Switch  int  `json:"switch"`
	Cleanup bool `json:"cleanup"`
}

type SwitchService struct {
	backend ports.Dispatcher
	log     zerolog.Logger
}

func NewSwitchService(backend ports.Dispatcher, log zerolog.Logger) *SwitchService {
	return &SwitchService{backend: backend, log: log}
}

func (s *SwitchService) GetAll(ctx context.Context) domain.Result[[]domain.Switch] {
	raw := s.backend.Dispatch(ctx, request(endpoint.ListSwitch, "fetch switches", nil))
	return decodeList[domain.Switch](raw, "fetch switches", "switchs", "switches")
}

func (s *SwitchService) Reserve(ctx context.Context, in ports.ReserveInput) domain.Result[string] {
	body := reserveBody{Switch: in.SwitchID, EndDate: in.EndDate}
	if in.Exclusive {
		zero := 0
		body.Confirmation = &zero
	}
	res := detailOf(s.backend.Dispatch(ctx, request(endpoint.Reserve, "reserve switch", body)))
	if res.Success {
		s.log.Info().Int("switch", in.SwitchID).Str("end_date", in.EndDate).Msg("switch reserved")
	}
	return res
}

func (s *SwitchService) Release(ctx context.Context, switchID int, cleanup bool) domain.Result[string] {
	body := releaseBody{Switch: switchID, Cleanup: cleanup}
	res := detailOf(s.backend.Dispatch(ctx, request(endpoint.Release, "release switch", body)))
	if res.Success {
		s.log.Info().Int("switch", switchID).Bool("cleanup", cleanup).Msg("switch released")
	}
	return res
}

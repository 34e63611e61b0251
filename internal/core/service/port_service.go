package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/core/ports"
)

type portPair struct {
	PortA int `json:"portA"`
	PortB int `json:"portB"`
}

type PortService struct {
	backend ports.Dispatcher
	log     zerolog.Logger
}

func NewPortService(backend ports.Dispatcher, log zerolog.Logger) *PortService {
	return &PortService{backend: backend, log: log}
}

func (s *PortService) GetAll(ctx context.Context) domain.Result[[]domain.Port] {
	raw := s.backend.Dispatch(ctx, request(endpoint.ListPort, "fetch ports", nil))
	return decodeList[domain.Port](raw, "fetch ports", "ports")
}

func (s *PortService) GetBySwitch(ctx context.Context, switchID int) domain.Result[[]domain.Port] {
	raw := s.backend.Dispatch(ctx, requestWithID(endpoint.ListPort, switchID, "fetch switch ports"))
	return decodeList[domain.Port](raw, "fetch switch ports", "ports")
}

func (s *PortService) Connect(ctx context.Context, portA, portB int) domain.Result[string] {
	res := detailOf(s.backend.Dispatch(ctx, request(endpoint.Connect, "connect ports", portPair{portA, portB})))
	if res.Success {
		s.log.Info().Int("port_a", portA).Int("port_b", portB).Msg("ports connected")
	}
	return res
}

func (s *PortService) Disconnect(ctx context.Context, portA, portB int) domain.Result[string] {
	res := detailOf(s.backend.Dispatch(ctx, request(endpoint.Disconnect, "disconnect ports", portPair{portA, portB})))
	if res.Success {
		s.log.Info().Int("port_a", portA).Int("port_b", portB).Msg("ports disconnected")
	}
	return res
}

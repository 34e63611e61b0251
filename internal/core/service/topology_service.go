package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/core/ports"
)

type shareBody struct {
	TargetUsername string `json:"target_username"`
}

type TopologyService struct {
	backend ports.Dispatcher
	log     zerolog.Logger
}

func NewTopologyService(backend ports.Dispatcher, log zerolog.Logger) *TopologyService {
	return &TopologyService{backend: backend, log: log}
}

func (s *TopologyService) Share(ctx context.Context, targetUsername string) domain.Result[string] {
	res := detailOf(s.backend.Dispatch(ctx, request(endpoint.ShareTopology, "share topology", shareBody{targetUsername})))
	if res.Success {
		s.log.Info().Str("target", targetUsername).Msg("topology shared")
	}
	return res
}

func (s *TopologyService) GetShared(ctx context.Context) domain.Result[[]domain.TopologyShare] {
	raw := s.backend.Dispatch(ctx, request(endpoint.ListSharedTopologies, "fetch shared topologies", nil))
	return decodeList[domain.TopologyShare](raw, "fetch shared topologies", "shares", "shared_topologies")
}

func (s *TopologyService) Unshare(ctx context.Context, shareID int) domain.Result[string] {
	res := detailOf(s.backend.Dispatch(ctx, requestWithID(endpoint.UnshareTopology, shareID, "unshare topology")))
	if res.Success {
		s.log.Info().Int("share_id", shareID).Msg("topology unshared")
	}
	return res
}

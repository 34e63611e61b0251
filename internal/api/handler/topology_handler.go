package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/ports"
)

type TopologyHandler struct {
	ports    ports.PortService
	topology ports.TopologyService
	batch    ports.Batcher
}

func NewTopologyHandler(portService ports.PortService, topology ports.TopologyService, batch ports.Batcher) *TopologyHandler {
	return &TopologyHandler{ports: portService, topology: topology, batch: batch}
}

// Page loads ports and shared topologies together.
//
// @Summary      Topology page
// @Tags         topology
// @Produce      json
// @Success      200  {object}  topologyPage
// @Router       /topology [get]
func (h *TopologyHandler) Page(c echo.Context) error {
	results := h.batch.Run(c.Request().Context(),
		func(ctx context.Context) domain.Result[any] { return h.ports.GetAll(ctx).Any() },
		func(ctx context.Context) domain.Result[any] { return h.topology.GetShared(ctx).Any() },
	)
	return c.JSON(http.StatusOK, topologyPage{Ports: results[0], Shared: results[1]})
}

// SwitchPorts lists the ports of one switch.
//
// @Summary      Ports of a switch
// @Tags         topology
// @Produce      json
// @Param        id   path      int  true  "Switch ID"
// @Success      200  {object}  domain.Result[[]domain.Port]
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  domain.Result[[]domain.Port]
// @Router       /topology/switches/{id}/ports [get]
func (h *TopologyHandler) SwitchPorts(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return respond(c, h.ports.GetBySwitch(c.Request().Context(), id))
}

// Connect links two ports on a fresh SVLAN.
//
// @Summary      Connect two ports
// @Tags         topology
// @Accept       json
// @Produce      json
// @Param        body  body      portPairRequest  true  "Ports"
// @Success      200   {object}  domain.Result[string]
// @Failure      400   {object}  domain.Result[string]
// @Failure      422   {object}  errorResponse
// @Router       /topology/connect [post]
func (h *TopologyHandler) Connect(c echo.Context) error {
	var req portPairRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return respond(c, h.ports.Connect(c.Request().Context(), req.PortA, req.PortB))
}

// Disconnect unlinks two ports.
//
// @Summary      Disconnect two ports
// @Tags         topology
// @Accept       json
// @Produce      json
// @Param        body  body      portPairRequest  true  "Ports"
// @Success      200   {object}  domain.Result[string]
// @Failure      400   {object}  domain.Result[string]
// @Failure      422   {object}  errorResponse
// @Router       /topology/disconnect [post]
func (h *TopologyHandler) Disconnect(c echo.Context) error {
	var req portPairRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return respond(c, h.ports.Disconnect(c.Request().Context(), req.PortA, req.PortB))
}

// Share grants another user a view of the caller's topology.
//
// @Summary      Share topology
// @Tags         topology
// @Accept       json
// @Produce      json
// @Param        body  body      shareRequest  true  "Target user"
// @Success      201   {object}  domain.Result[string]
// @Failure      404   {object}  domain.Result[string]
// @Failure      422   {object}  errorResponse
// @Router       /topology/share [post]
func (h *TopologyHandler) Share(c echo.Context) error {
	var req shareRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return respond(c, h.topology.Share(c.Request().Context(), req.TargetUsername))
}

// Unshare revokes a share.
//
// @Summary      Unshare topology
// @Tags         topology
// @Produce      json
// @Param        id   path      int  true  "Share ID"
// @Success      200  {object}  domain.Result[string]
// @Failure      404  {object}  domain.Result[string]
// @Router       /topology/shares/{id} [delete]
func (h *TopologyHandler) Unshare(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return respond(c, h.topology.Unshare(c.Request().Context(), id))
}

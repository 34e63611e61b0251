package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/ports"
)

type ReservationHandler struct {
	switches     ports.SwitchService
	reservations ports.ReservationService
	batch        ports.Batcher
	now          func() time.Time
}

func NewReservationHandler(switches ports.SwitchService, reservations ports.ReservationService, batch ports.Batcher) *ReservationHandler {
	return &ReservationHandler{switches: switches, reservations: reservations, batch: batch, now: time.Now}
}

// Page loads switches and reservations together along with the selectable
// end dates.
//
// @Summary      Reservation page
// @Tags         reservation
// @Produce      json
// @Success      200  {object}  reservationPage
// @Failure      302  "redirect to /login when logged out"
// @Router       /reservation [get]
func (h *ReservationHandler) Page(c echo.Context) error {
	results := h.batch.Run(c.Request().Context(),
		func(ctx context.Context) domain.Result[any] { return h.switches.GetAll(ctx).Any() },
		func(ctx context.Context) domain.Result[any] { return h.reservations.GetAll(ctx).Any() },
	)
	return c.JSON(http.StatusOK, reservationPage{
		Switches:     results[0],
		Reservations: results[1],
		Window:       domain.ReservationWindowAt(h.now()),
	})
}

// Reserve holds a switch until end_date.
//
// @Summary      Reserve a switch
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        body  body      reserveRequest  true  "Reservation"
// @Success      201   {object}  domain.Result[string]
// @Failure      400   {object}  domain.Result[string]
// @Failure      422   {object}  errorResponse
// @Router       /reservation/reserve [post]
func (h *ReservationHandler) Reserve(c echo.Context) error {
	var req reserveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return respond(c, h.switches.Reserve(c.Request().Context(), ports.ReserveInput{
		SwitchID:  req.SwitchID,
		EndDate:   req.EndDate,
		Exclusive: req.Exclusive,
	}))
}

// Release gives a switch back.
//
// @Summary      Release a switch
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        body  body      releaseRequest  true  "Release"
// @Success      200   {object}  domain.Result[string]
// @Failure      400   {object}  domain.Result[string]
// @Failure      422   {object}  errorResponse
// @Router       /reservation/release [post]
func (h *ReservationHandler) Release(c echo.Context) error {
	var req releaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return respond(c, h.switches.Release(c.Request().Context(), req.SwitchID, req.Cleanup))
}

package handler

import "github.com/labreserve/switch-console/internal/core/domain"

// errorResponse is the body of console errors raised outside the envelope
// path (bind and validation failures).
type errorResponse struct {
	Error string `json:"error"`
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type reserveRequest struct {
	SwitchID  int    `json:"switch_id" validate:"required,gt=0"`
	EndDate   string `json:"end_date"  validate:"omitempty,reservation_date"`
	Exclusive bool   `json:"exclusive"`
}

type releaseRequest struct {
	SwitchID int  `json:"switch_id" validate:"required,gt=0"`
	Cleanup  bool `json:"cleanup"`
}

type portPairRequest struct {
	PortA int `json:"port_a" validate:"required,gt=0"`
	PortB int `json:"port_b" validate:"required,gt=0,nefield=PortA"`
}

type shareRequest struct {
	TargetUsername string `json:"target_username" validate:"required"`
}

// pageResponse describes a public page and where to go after it.
type pageResponse struct {
	Page string `json:"page"`
	Next string `json:"next,omitempty"`
}

type homeResponse struct {
	Authenticated bool `json:"authenticated"`
	IsAdmin       bool `json:"is_admin"`
}

// reservationPage is everything the reservation view needs, fetched in one
// batch. Each part succeeds or fails on its own.
type reservationPage struct {
	Switches     domain.Result[any]       `json:"switches"`
	Reservations domain.Result[any]       `json:"reservations"`
	Window       domain.ReservationWindow `json:"window"`
}

type topologyPage struct {
	Ports  domain.Result[any] `json:"ports"`
	Shared domain.Result[any] `json:"shared"`
}

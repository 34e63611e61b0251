package domain

import "errors"

var (
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrForbidden              = errors.New("access forbidden")
	ErrInvalidReservationDate = errors.New("invalid reservation date")
	ErrUnknownSessionBackend  = errors.New("unknown session backend")
)

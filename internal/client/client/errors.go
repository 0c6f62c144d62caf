package client

import "errors"

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrUnexpectedStatus      = errors.New("unexpected status")
	ErrInvalidIdentity       = errors.New("identity without id")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)

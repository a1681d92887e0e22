package engine

import "errors"

var (
	// ErrUnknownMethod is returned for a Request whose Method is not supported.
	ErrUnknownMethod = errors.New("engine: unknown method")

	// ErrInvalidRequest is returned for a structurally incomplete Request.
	ErrInvalidRequest = errors.New("engine: invalid request")
)

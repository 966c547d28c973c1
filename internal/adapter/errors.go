package adapter

import "errors"

// Sentinel errors the HTTP status of a failed API call is mapped to.
// Callers match with [errors.Is]; anything without a dedicated sentinel
// is passed through as a plain error carrying status and body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

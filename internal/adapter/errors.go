package adapter

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrRequestTimeout      = errors.New("request timed out on server")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrUnexpectedContentType = errors.New("unexpected content type")
	ErrUnexpectedLocation    = errors.New("unexpected redirect location")
)

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is
	// called without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the Authorization
	// header does not follow the "Bearer <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the bearer scheme is present but the
	// token itself is empty.
	ErrEmptyToken = errors.New("empty token")

	// ErrNoValidatedPayload is returned when a handler that requires a
	// schema-checked body runs without the validation middleware having
	// stored one in the context.
	ErrNoValidatedPayload = errors.New("no validated payload in request context")
)

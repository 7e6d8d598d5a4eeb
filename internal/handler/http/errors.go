package http

import (
	"errors"

	"github.com/MKhiriev/recipe-keeper/internal/app"
)

var (
	// ErrEmptyAuthorizationHeader is returned when the "Authorization" header
	// is missing from a request to a protected route.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header value does not
	// follow the "Bearer <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the bearer token part of the header is
	// blank.
	ErrEmptyToken = errors.New("empty token")

	// ErrTokenIsExpired is returned when a JWT is syntactically valid but its
	// expiry time has passed.
	ErrTokenIsExpired = errors.New(app.MsgTokenIsExpired)
)

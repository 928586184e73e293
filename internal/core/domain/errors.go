package domain

import "errors"

var (
	// ErrInvalidCredentials covers a wrong password or an unknown email at
	// login. Callers must surface it with a single message that does not
	// reveal which of the two occurred.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInvalidToken covers a malformed, forged, or expired bearer token.
	// The three cases are deliberately indistinguishable to the client.
	ErrInvalidToken = errors.New("invalid token")

	ErrNoToken         = errors.New("no token provided")
	ErrAccountNotFound = errors.New("user not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrForbidden       = errors.New("access forbidden")
	ErrTooManyAttempts = errors.New("too many login attempts")

	ErrSlugExists    = errors.New("slug already exists")
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrMissingSecret = errors.New("signing secret not configured")
)

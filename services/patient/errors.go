package patient

import "errors"

var (
	// ErrEmailTaken reports a registration against an existing email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials covers both unknown email and bad password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound reports that no patient matched.
	ErrNotFound = errors.New("patient not found")
)

package errors

import (
	"errors"
	"fmt"
)

// Common error types for the Colten client
var (
	// Transport errors
	ErrNetwork = errors.New("network error")
	ErrServer  = errors.New("server error")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrLoginTimeout       = errors.New("login request timed out")
	ErrLoginSuperseded    = errors.New("login superseded by a newer attempt")
	ErrInvalidResponse    = errors.New("invalid authentication response")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Resource errors
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrRoomCodeInvalid = errors.New("invalid room code")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

package token

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	colterrors "github.com/jrsteele09/go-colten/internal/errors"
)

// ExpiresAt decodes the payload segment of credential without verifying its signature
// and returns the exp claim. A token without a readable exp is an error.
func ExpiresAt(credential string) (time.Time, error) {
	if strings.TrimSpace(credential) == "" {
		return time.Time{}, errors.Wrap(colterrors.ErrInvalidToken, "empty credential")
	}

	unverified, _, err := jwtlib.NewParser().ParseUnverified(credential, jwtlib.MapClaims{})
	if err != nil {
		return time.Time{}, errors.Wrap(colterrors.ErrInvalidToken, err.Error())
	}

	exp, err := unverified.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errors.Wrap(colterrors.ErrInvalidToken, err.Error())
	}
	if exp == nil {
		return time.Time{}, errors.Wrap(colterrors.ErrInvalidToken, "token missing exp claim")
	}
	return exp.Time, nil
}

// CheckExpiry returns ErrTokenExpired when credential's exp lies before now and
// ErrInvalidToken when it cannot be decoded.
func CheckExpiry(credential string, now time.Time) error {
	exp, err := ExpiresAt(credential)
	if err != nil {
		return err
	}
	if exp.Before(now) {
		return errors.Wrapf(colterrors.ErrTokenExpired, "expired at %s", exp.UTC().Format(time.RFC3339))
	}
	return nil
}

// IsExpired reports whether credential's exp lies before now.
// Anything that cannot be decoded counts as expired.
func IsExpired(credential string, now time.Time) bool {
	return CheckExpiry(credential, now) != nil
}

// Subject returns the unverified sub claim, or "" if there is none.
func Subject(credential string) string {
	unverified, _, err := jwtlib.NewParser().ParseUnverified(credential, jwtlib.MapClaims{})
	if err != nil {
		return ""
	}
	sub, _ := unverified.Claims.GetSubject()
	return sub
}

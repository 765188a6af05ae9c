package token_test

import (
	"encoding/base64"
	"testing"
	"time"

	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/token"
	"github.com/stretchr/testify/require"
)

// unsignedToken builds a three part token whose payload is the given JSON.
func unsignedToken(payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." +
		enc.EncodeToString([]byte(payload)) + ".c2lnbmF0dXJl"
}

func TestIsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	signer := token.NewHMACSigner("test-secret")

	past, err := token.Issue(signer, "a@b.com", []string{"ROLE_OWNER"}, now.Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	future, err := token.Issue(signer, "a@b.com", []string{"ROLE_OWNER"}, now, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		credential string
		want       bool
	}{
		{"exp in the past", past, true},
		{"exp in the future", future, false},
		{"exp one second ago", unsignedToken(`{"exp":1699999999}`), true},
		{"exp equal to now", unsignedToken(`{"exp":1700000000}`), false},
		{"fractional exp", unsignedToken(`{"exp":1700000000.5}`), false},
		{"missing exp", unsignedToken(`{"sub":"x"}`), true},
		{"payload not json", unsignedToken(`not-json`), true},
		{"two segments", "abc.def", true},
		{"opaque mock token", "mock_tenant_token_1700000000000", true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, token.IsExpired(tc.credential, now))
		})
	}
}

func TestExpiresAt(t *testing.T) {
	exp, err := token.ExpiresAt(unsignedToken(`{"exp":1700000000}`))
	require.NoError(t, err)
	require.Equal(t, time.Unix(1_700_000_000, 0), exp)

	_, err = token.ExpiresAt("garbage")
	require.ErrorIs(t, err, colterrors.ErrInvalidToken)
}

func TestSigner_IssueVerify(t *testing.T) {
	signer := token.NewHMACSigner("test-secret")
	raw, err := token.Issue(signer, "owner@example.com", []string{"ROLE_OWNER"}, time.Now(), time.Hour)
	require.NoError(t, err)
	require.Equal(t, "owner@example.com", token.Subject(raw))

	claims, err := token.Verify(signer, raw)
	require.NoError(t, err)
	require.Equal(t, "owner@example.com", claims["sub"])

	_, err = token.Verify(token.NewHMACSigner("other-secret"), raw)
	require.ErrorIs(t, err, colterrors.ErrInvalidToken)

	expired, err := token.Issue(signer, "owner@example.com", nil, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = token.Verify(signer, expired)
	require.ErrorIs(t, err, colterrors.ErrTokenExpired)
}

func TestCheckExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	require.NoError(t, token.CheckExpiry(unsignedToken(`{"exp":1700000060}`), now))
	require.ErrorIs(t, token.CheckExpiry(unsignedToken(`{"exp":1699999999}`), now), colterrors.ErrTokenExpired)
	require.ErrorIs(t, token.CheckExpiry(unsignedToken(`{"sub":"x"}`), now), colterrors.ErrInvalidToken)
	require.ErrorIs(t, token.CheckExpiry("", now), colterrors.ErrInvalidToken)
}

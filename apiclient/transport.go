package apiclient

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/token"
)

// CredentialSource supplies the bearer credential for each request.
type CredentialSource interface {
	Credential() (string, bool)
}

// Invalidator is told when the server rejects a credential.
type Invalidator interface {
	Invalidate(credential string, reason auth.LogoutReason) bool
}

// bearerTransport attaches the current credential and reports a 401 for the
// credential it attached.
type bearerTransport struct {
	base        http.RoundTripper
	credentials CredentialSource
	invalidator Invalidator
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	credential, attached := t.credential()
	if attached {
		req = req.Clone(req.Context())
		bearer := &oauth2.Token{AccessToken: credential, TokenType: "Bearer"}
		if exp, err := token.ExpiresAt(credential); err == nil {
			bearer.Expiry = exp
		}
		bearer.SetAuthHeader(req)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && attached && t.invalidator != nil && !isAuthEndpoint(req.URL.Path) {
		log.Info().Str("path", req.URL.Path).Msg("apiclient: credential rejected")
		t.invalidator.Invalidate(credential, auth.ReasonUnauthorized)
	}
	return resp, nil
}

func (t *bearerTransport) credential() (string, bool) {
	if t.credentials == nil {
		return "", false
	}
	credential, ok := t.credentials.Credential()
	return credential, ok && credential != ""
}

func isAuthEndpoint(path string) bool {
	for _, endpoint := range authEndpoints {
		if strings.HasSuffix(path, endpoint) {
			return true
		}
	}
	return false
}

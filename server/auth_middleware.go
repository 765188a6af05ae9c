package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-colten/token"
	"github.com/jrsteele09/go-colten/users"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyPrincipal stores the authenticated account
const ContextKeyPrincipal ContextKey = "principal"

// Principal is the account behind a verified bearer token.
type Principal struct {
	Account *users.Account
	TokenID string
}

func (p *Principal) ID() int64 {
	return p.Account.ID
}

func principalFrom(ctx context.Context) *Principal {
	p, _ := ctx.Value(ContextKeyPrincipal).(*Principal)
	return p
}

// RequireAuth validates the Bearer access token and loads the account it was issued to.
func (s *Server) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "Full authentication is required to access this resource")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				writeError(w, http.StatusUnauthorized, "Invalid Authorization header format")
				return
			}

			claims, err := token.Verify(s.signer, strings.TrimSpace(parts[1]))
			if err != nil {
				log.Debug().Err(err).Msg("mockapi: rejected bearer token")
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			email, _ := claims.GetSubject()
			account, err := s.accounts.GetByEmail(email)
			if err != nil || account == nil {
				writeError(w, http.StatusUnauthorized, "Account no longer exists")
				return
			}

			jti, _ := claims["jti"].(string)
			ctx := context.WithValue(r.Context(), ContextKeyPrincipal, &Principal{Account: account, TokenID: jti})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects principals without role. Admins pass every role check.
// Must be chained after RequireAuth.
func (s *Server) RequireRole(role users.RoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := principalFrom(r.Context())
			if p == nil {
				writeError(w, http.StatusUnauthorized, "Full authentication is required to access this resource")
				return
			}
			if !p.Account.HasRole(role) && !p.Account.IsAdmin() {
				writeError(w, http.StatusForbidden, "Access Denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

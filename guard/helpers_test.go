package guard_test

import (
	"context"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/tokenstore"
)

type nopAuthenticator struct{}

func (nopAuthenticator) Login(context.Context, auth.LoginRequest) (*auth.AuthResponse, error) {
	return nil, nil
}

func (nopAuthenticator) Register(context.Context, auth.RegisterRequest) (*auth.AuthResponse, error) {
	return nil, nil
}

type nopRegistrar struct{}

func (nopRegistrar) RegisterTenant(context.Context, auth.TenantRegistrationRequest) (*auth.AuthResponse, error) {
	return nil, nil
}

func tokenstoreMemory() *tokenstore.Store {
	return tokenstore.NewMemoryStore()
}

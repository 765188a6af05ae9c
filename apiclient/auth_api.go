package apiclient

import (
	"context"
	"strings"

	"github.com/jrsteele09/go-colten/auth"
	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/models"
)

// invalidLoginMessage is how the backend words a bad login on a 400.
const invalidLoginMessage = "invalid email or password"

// AuthAPI is the remote authentication service. It implements auth.Authenticator and
// auth.TenantRegistrar.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

var (
	_ auth.Authenticator   = (*AuthAPI)(nil)
	_ auth.TenantRegistrar = (*AuthAPI)(nil)
)

func (a *AuthAPI) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	resp, err := Post[auth.AuthResponse](ctx, a.client, EndpointLogin, req)
	if err != nil {
		return nil, credentialsError(err)
	}
	return &resp, nil
}

func (a *AuthAPI) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	resp, err := Post[auth.AuthResponse](ctx, a.client, EndpointRegister, req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) RegisterTenant(ctx context.Context, req auth.TenantRegistrationRequest) (*auth.AuthResponse, error) {
	req.RoomCode = auth.NormalizeRoomCode(req.RoomCode)
	resp, err := Post[auth.AuthResponse](ctx, a.client, EndpointTenantRegister, req)
	if err != nil {
		return nil, roomCodeError(err)
	}
	return &resp, nil
}

// ValidateRoomCode returns the unit a room code belongs to.
func (a *AuthAPI) ValidateRoomCode(ctx context.Context, code string) (*models.Unit, error) {
	code = auth.NormalizeRoomCode(code)
	if err := auth.ValidateRoomCodeFormat(code); err != nil {
		return nil, err
	}
	unit, err := Post[models.Unit](ctx, a.client, EndpointValidateRoomCode, map[string]string{"roomCode": code})
	if err != nil {
		return nil, roomCodeError(err)
	}
	return &unit, nil
}

// credentialsError maps a rejected login to ErrInvalidCredentials. The backend answers
// either 401 or 400 with an "Invalid email or password" message.
func credentialsError(err error) error {
	var apiErr *APIError
	if !colterrors.As(err, &apiErr) {
		return err
	}
	switch {
	case colterrors.Is(apiErr.Kind, colterrors.ErrUnauthorized):
		return apiErr.withKind(colterrors.ErrInvalidCredentials, MessageCredentials)
	case colterrors.Is(apiErr.Kind, colterrors.ErrValidation) && strings.Contains(strings.ToLower(apiErr.Message), invalidLoginMessage):
		return apiErr.withKind(colterrors.ErrInvalidCredentials, "")
	}
	return err
}

func roomCodeError(err error) error {
	var apiErr *APIError
	if colterrors.As(err, &apiErr) && strings.Contains(strings.ToLower(apiErr.Message), "invalid room code") {
		return apiErr.withKind(colterrors.ErrRoomCodeInvalid, "")
	}
	return err
}

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-colten/auth"
	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/token"
	"github.com/jrsteele09/go-colten/users"
)

func tenantRequest() auth.TenantRegistrationRequest {
	return auth.TenantRegistrationRequest{
		FirstName: "Tom",
		LastName:  "Tenant",
		Email:     "tom@example.com",
		Password:  testPassword,
		RoomCode:  "ABCD1234",
	}
}

func TestValidateRoomCodeFormat(t *testing.T) {
	require.NoError(t, auth.ValidateRoomCodeFormat("abcd1234"))
	require.NoError(t, auth.ValidateRoomCodeFormat("  ABCD1234 "))
	require.ErrorIs(t, auth.ValidateRoomCodeFormat("ABC"), colterrors.ErrRoomCodeInvalid)
	require.ErrorIs(t, auth.ValidateRoomCodeFormat(""), colterrors.ErrRoomCodeInvalid)
	require.Equal(t, "ABCD1234", auth.NormalizeRoomCode(" abcd1234"))
}

func TestMockTenantRegistrar(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	signer := token.NewHMACSigner(secretStr)
	mock := auth.NewMockTenantRegistrar(signer, auth.WithMockNowTime(func() time.Time { return now }))

	resp, err := mock.RegisterTenant(context.Background(), tenantRequest())
	require.NoError(t, err)
	require.Equal(t, "tom@example.com", resp.Email)
	require.GreaterOrEqual(t, resp.ID, int64(100))
	require.Less(t, resp.ID, int64(1100))
	require.Equal(t, []users.RoleType{users.RoleTenant}, resp.Role.Resolve())
	require.False(t, token.IsExpired(resp.Token, now.Add(23*time.Hour)))
	require.True(t, token.IsExpired(resp.Token, now.Add(25*time.Hour)))

	claims, err := token.Verify(signer, resp.Token)
	require.NoError(t, err)
	require.Equal(t, "tom@example.com", claims["sub"])

	bad := tenantRequest()
	bad.RoomCode = "short"
	_, err = mock.RegisterTenant(context.Background(), bad)
	require.ErrorIs(t, err, colterrors.ErrRoomCodeInvalid)
}

func TestMockTenantRegistrar_DelayHonoursContext(t *testing.T) {
	mock := auth.NewMockTenantRegistrar(token.NewHMACSigner(secretStr), auth.WithMockDelay(time.Minute))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := mock.RegisterTenant(ctx, tenantRequest())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorIs(t, mock.ValidateRoomCode(ctx, "ABCD1234"), context.DeadlineExceeded)
}

func TestFallbackTenantRegistrar(t *testing.T) {
	primaryErr := errors.New("backend unavailable")
	failing := &fakeTenantRegistrar{register: func(context.Context, auth.TenantRegistrationRequest) (*auth.AuthResponse, error) {
		return nil, primaryErr
	}}
	fallbackCalled := false
	fallback := &fakeTenantRegistrar{register: func(_ context.Context, req auth.TenantRegistrationRequest) (*auth.AuthResponse, error) {
		fallbackCalled = true
		return &auth.AuthResponse{Token: "t", Email: req.Email}, nil
	}}

	t.Run("primary success skips fallback", func(t *testing.T) {
		fallbackCalled = false
		ok := &fakeTenantRegistrar{register: func(context.Context, auth.TenantRegistrationRequest) (*auth.AuthResponse, error) {
			return &auth.AuthResponse{Token: "primary"}, nil
		}}
		resp, err := auth.FallbackTenantRegistrar{Primary: ok, Fallback: fallback}.RegisterTenant(context.Background(), tenantRequest())
		require.NoError(t, err)
		require.Equal(t, "primary", resp.Token)
		require.False(t, fallbackCalled)
	})

	t.Run("primary failure uses fallback", func(t *testing.T) {
		fallbackCalled = false
		resp, err := auth.FallbackTenantRegistrar{Primary: failing, Fallback: fallback}.RegisterTenant(context.Background(), tenantRequest())
		require.NoError(t, err)
		require.Equal(t, "tom@example.com", resp.Email)
		require.True(t, fallbackCalled)
	})

	t.Run("cancelled caller gets primary error", func(t *testing.T) {
		fallbackCalled = false
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := auth.FallbackTenantRegistrar{Primary: failing, Fallback: fallback}.RegisterTenant(ctx, tenantRequest())
		require.ErrorIs(t, err, primaryErr)
		require.False(t, fallbackCalled)
	})

	t.Run("no fallback configured", func(t *testing.T) {
		_, err := auth.FallbackTenantRegistrar{Primary: failing}.RegisterTenant(context.Background(), tenantRequest())
		require.ErrorIs(t, err, primaryErr)
	})
}

package auth

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/token"
	"github.com/jrsteele09/go-colten/users"
)

// RoomCodeLength is the length of a unit's room code.
const RoomCodeLength = 8

// NormalizeRoomCode trims and upper-cases a room code as typed by a user.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateRoomCodeFormat checks the code's shape only, not whether a unit exists.
func ValidateRoomCodeFormat(code string) error {
	if len(NormalizeRoomCode(code)) != RoomCodeLength {
		return errors.Wrapf(colterrors.ErrRoomCodeInvalid, "room code must be %d characters", RoomCodeLength)
	}
	return nil
}

// FallbackTenantRegistrar tries Primary and, if it fails for any reason other than the
// caller giving up, Fallback.
type FallbackTenantRegistrar struct {
	Primary  TenantRegistrar
	Fallback TenantRegistrar
}

func (f FallbackTenantRegistrar) RegisterTenant(ctx context.Context, req TenantRegistrationRequest) (*AuthResponse, error) {
	resp, err := f.Primary.RegisterTenant(ctx, req)
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil || f.Fallback == nil {
		return nil, err
	}
	log.Warn().Err(err).Msg("tenant registration failed, using fallback registrar")
	return f.Fallback.RegisterTenant(ctx, req)
}

// MockTenantRegistrar registers tenants locally for development when no backend is
// available. It issues a signed token so expiry checks treat the session as live.
type MockTenantRegistrar struct {
	signer  token.Signer
	ttl     time.Duration
	delay   time.Duration
	nowTime func() time.Time
}

type MockTenantOption func(*MockTenantRegistrar)

// WithMockDelay simulates network latency.
func WithMockDelay(d time.Duration) MockTenantOption {
	return func(m *MockTenantRegistrar) {
		m.delay = d
	}
}

func WithMockNowTime(nowFunc func() time.Time) MockTenantOption {
	return func(m *MockTenantRegistrar) {
		m.nowTime = nowFunc
	}
}

func WithMockTokenTTL(ttl time.Duration) MockTenantOption {
	return func(m *MockTenantRegistrar) {
		m.ttl = ttl
	}
}

func NewMockTenantRegistrar(signer token.Signer, options ...MockTenantOption) *MockTenantRegistrar {
	m := &MockTenantRegistrar{
		signer:  signer,
		ttl:     24 * time.Hour,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// ValidateRoomCode accepts any well-formed room code.
func (m *MockTenantRegistrar) ValidateRoomCode(ctx context.Context, code string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	return ValidateRoomCodeFormat(code)
}

func (m *MockTenantRegistrar) RegisterTenant(ctx context.Context, req TenantRegistrationRequest) (*AuthResponse, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if err := ValidateRoomCodeFormat(req.RoomCode); err != nil {
		return nil, err
	}
	if err := users.ValidateEmail(req.Email); err != nil {
		return nil, errors.Wrap(colterrors.ErrValidation, err.Error())
	}

	roles := []string{string(users.RoleTenant)}
	signed, err := token.Issue(m.signer, req.Email, roles, m.nowTime(), m.ttl)
	if err != nil {
		return nil, errors.Wrap(err, "[MockTenantRegistrar] failed to issue token")
	}

	return &AuthResponse{
		Token:     signed,
		Type:      "Bearer",
		ID:        100 + rand.Int64N(1000),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      users.RoleList(roles...),
		Message:   "Tenant registered successfully",
	}, nil
}

func (m *MockTenantRegistrar) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

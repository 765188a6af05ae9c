package auth

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/token"
	"github.com/jrsteele09/go-colten/users"
)

const (
	defaultLoginTimeout = 30 * time.Second
	defaultLoginPath    = "/login"
	subscriberBuffer    = 8
)

// Manager owns the session. It is the only writer of the token store and the only
// publisher of login/logout events.
type Manager struct {
	store        TokenStore
	authn        Authenticator
	tenants      TenantRegistrar
	nowTime      func() time.Time
	loginTimeout time.Duration
	loginPath    string

	mu          sync.Mutex
	status      Status
	identity    *users.Identity
	inFlight    int
	generation  uint64
	subscribers map[int]chan Event
	nextSub     int
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// WithLoginTimeout bounds each login and registration call.
func WithLoginTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.loginTimeout = d
		}
	}
}

// WithLoginPath sets the redirect target carried by logout events.
func WithLoginPath(path string) ManagerOption {
	return func(m *Manager) {
		if path != "" {
			m.loginPath = path
		}
	}
}

// NewManager creates a Manager in the Initializing state. Call Start to load any
// persisted session.
func NewManager(store TokenStore, authn Authenticator, tenants TenantRegistrar, options ...ManagerOption) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[NewManager] token store is required")
	}
	if authn == nil {
		return nil, errors.New("[NewManager] authenticator is required")
	}
	if tenants == nil {
		return nil, errors.New("[NewManager] tenant registrar is required")
	}

	m := &Manager{
		store:        store,
		authn:        authn,
		tenants:      tenants,
		nowTime:      time.Now,
		loginTimeout: defaultLoginTimeout,
		loginPath:    defaultLoginPath,
		status:       StatusInitializing,
		subscribers:  make(map[int]chan Event),
	}
	for _, opt := range options {
		opt(m)
	}
	return m, nil
}

// Start restores the persisted session. An expired credential is cleared and a logout
// event is published. A credential without a usable identity is cleared silently.
func (m *Manager) Start() Session {
	credential, identity, ok := m.store.Get()
	switch {
	case ok && !token.IsExpired(credential, m.nowTime()):
		m.mu.Lock()
		m.status = StatusAuthenticated
		m.identity = identity
		m.mu.Unlock()
		log.Debug().Str("email", identity.Email).Msg("session: restored")
	case ok:
		log.Info().Msg("session: persisted token expired")
		m.ForceLogout(ReasonExpired)
	default:
		m.mu.Lock()
		if _, present := m.store.Credential(); present {
			log.Debug().Msg("session: discarding credential without identity")
			m.clearStoreLocked()
		}
		m.status = StatusUnauthenticated
		m.identity = nil
		m.mu.Unlock()
	}
	return m.Session()
}

// Login authenticates with email and password. A role-less response means an owner.
func (m *Manager) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return m.authenticate(ctx, "Login", []users.RoleType{users.RoleOwner}, func(ctx context.Context) (*AuthResponse, error) {
		return m.authn.Login(ctx, LoginRequest{Email: email, Password: password})
	})
}

// Register creates an owner account and signs in as it. A role-less response means an
// owner, whatever role was requested.
func (m *Manager) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return m.authenticate(ctx, "Register", []users.RoleType{users.RoleOwner}, func(ctx context.Context) (*AuthResponse, error) {
		return m.authn.Register(ctx, req)
	})
}

// TenantRegister registers a tenant and signs in as them.
func (m *Manager) TenantRegister(ctx context.Context, req TenantRegistrationRequest) (*AuthResponse, error) {
	return m.authenticate(ctx, "TenantRegister", []users.RoleType{users.RoleTenant}, func(ctx context.Context) (*AuthResponse, error) {
		return m.tenants.RegisterTenant(ctx, req)
	})
}

// authenticate runs call and commits its result unless a newer login or a logout
// started in the meantime.
func (m *Manager) authenticate(ctx context.Context, op string, defaults []users.RoleType, call func(context.Context) (*AuthResponse, error)) (*AuthResponse, error) {
	gen := m.begin()

	callCtx, cancel := context.WithTimeout(ctx, m.loginTimeout)
	defer cancel()

	resp, err := call(callCtx)
	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		err = errors.Wrapf(colterrors.ErrLoginTimeout, "after %s", m.loginTimeout)
	}
	if err == nil && (resp == nil || resp.Token == "") {
		err = colterrors.ErrInvalidResponse
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight--

	if gen != m.generation {
		log.Debug().Str("op", op).Msg("session: discarding superseded response")
		return nil, errors.Wrapf(colterrors.ErrLoginSuperseded, "[%s]", op)
	}
	if err != nil {
		m.resetLocked()
		return nil, errors.Wrapf(err, "[%s] failed", op)
	}

	identity := resp.Identity(defaults...)
	if len(identity.Roles) == 0 {
		m.resetLocked()
		return nil, errors.Wrapf(colterrors.ErrInvalidResponse, "[%s] response carries no role", op)
	}
	if err := m.store.Set(resp.Token, identity); err != nil {
		m.resetLocked()
		return nil, errors.Wrapf(err, "[%s] failed to persist session", op)
	}
	m.status = StatusAuthenticated
	m.identity = identity
	log.Info().Str("email", identity.Email).Strs("roles", identity.RoleNames()).Msg("session: logged in")
	m.publishLocked(Event{Kind: EventLoggedIn, Identity: identity})
	return resp, nil
}

func (m *Manager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.inFlight++
	return m.generation
}

// Logout ends the session. Any login still in flight is discarded when it completes.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.generation++
	m.mu.Unlock()
	m.ForceLogout(ReasonUserLogout)
}

// ForceLogout clears the session and publishes a logout event redirecting to the login
// path. It is idempotent apart from the event.
func (m *Manager) ForceLogout(reason LogoutReason) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
	log.Info().Str("reason", string(reason)).Msg("session: logged out")
	m.publishLocked(Event{Kind: EventLoggedOut, Reason: reason, RedirectTo: m.loginPath})
}

// Invalidate forces a logout if credential is still the stored one. A rejection of a
// credential that has since been replaced is ignored.
func (m *Manager) Invalidate(credential string, reason LogoutReason) bool {
	current, ok := m.store.Credential()
	if !ok || current != credential {
		log.Debug().Str("reason", string(reason)).Msg("session: ignoring rejection of stale credential")
		return false
	}
	m.ForceLogout(reason)
	return true
}

// IsExpired reports whether the stored credential is missing or past its exp claim.
func (m *Manager) IsExpired() bool {
	credential, ok := m.store.Credential()
	if !ok {
		return true
	}
	return token.IsExpired(credential, m.nowTime())
}

// CheckExpiry logs out when a stored credential has expired and reports whether it did.
func (m *Manager) CheckExpiry() bool {
	credential, ok := m.store.Credential()
	if !ok || !token.IsExpired(credential, m.nowTime()) {
		return false
	}
	m.ForceLogout(ReasonExpired)
	return true
}

func (m *Manager) resetLocked() {
	m.clearStoreLocked()
	m.status = StatusUnauthenticated
	m.identity = nil
}

func (m *Manager) clearStoreLocked() {
	if err := m.store.Clear(); err != nil {
		log.Error().Err(err).Msg("session: failed to clear token store")
	}
}

// Subscribe returns a channel of session events and a function that unsubscribes and
// closes it. A subscriber that falls behind misses events rather than blocking the
// manager.
func (m *Manager) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = ch
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subscribers, id)
			close(ch)
		})
	}
}

func (m *Manager) publishLocked(ev Event) {
	for id, ch := range m.subscribers {
		select {
		case ch <- ev:
		default:
			log.Warn().Int("subscriber", id).Str("event", ev.Kind.String()).Msg("session: subscriber full, event dropped")
		}
	}
}

// Session returns a snapshot of the current state.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Session{Status: m.status, Identity: m.identity, Loading: m.inFlight > 0}
}

// Credential returns the stored bearer credential.
func (m *Manager) Credential() (string, bool) {
	return m.store.Credential()
}

func (m *Manager) currentIdentity() *users.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity
}

func (m *Manager) IsOwner() bool {
	return m.currentIdentity().IsOwner()
}

func (m *Manager) IsTenant() bool {
	return m.currentIdentity().IsTenant()
}

func (m *Manager) IsAdmin() bool {
	return m.currentIdentity().IsAdmin()
}

// DisplayName is "First Last", or empty when signed out.
func (m *Manager) DisplayName() string {
	return m.currentIdentity().DisplayName()
}

func (m *Manager) RoleLabel() string {
	return m.currentIdentity().RoleLabel()
}

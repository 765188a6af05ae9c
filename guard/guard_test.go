package guard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/guard"
	"github.com/jrsteele09/go-colten/users"
)

func sessionWith(roles ...users.RoleType) auth.Session {
	return auth.Session{
		Status:   auth.StatusAuthenticated,
		Identity: &users.Identity{ID: 1, Email: "a@example.com", Roles: roles},
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		session  auth.Session
		required users.RoleType
		outcome  guard.Outcome
	}{
		{"initializing waits", auth.Session{Status: auth.StatusInitializing}, "", guard.OutcomeWait},
		{"loading waits", auth.Session{Status: auth.StatusUnauthenticated, Loading: true}, users.RoleOwner, guard.OutcomeWait},
		{"unauthenticated redirects", auth.Session{Status: auth.StatusUnauthenticated}, "", guard.OutcomeRedirectToLogin},
		{"authenticated without identity redirects", auth.Session{Status: auth.StatusAuthenticated}, "", guard.OutcomeRedirectToLogin},
		{"no role required", sessionWith(users.RoleTenant), "", guard.OutcomeAllow},
		{"prefixed role matches bare requirement", sessionWith(users.RoleOwner), "OWNER", guard.OutcomeAllow},
		{"prefixed role matches prefixed requirement", sessionWith(users.RoleOwner), users.RoleOwner, guard.OutcomeAllow},
		{"bare role matches", sessionWith("TENANT"), "TENANT", guard.OutcomeAllow},
		{"admin satisfies owner", sessionWith(users.RoleAdmin), "OWNER", guard.OutcomeAllow},
		{"bare admin satisfies tenant", sessionWith("ADMIN"), "TENANT", guard.OutcomeAllow},
		{"tenant denied owner page", sessionWith(users.RoleTenant), "OWNER", guard.OutcomeDeny},
		{"owner denied tenant page", sessionWith(users.RoleOwner), users.RoleTenant, guard.OutcomeDeny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := guard.Check(tt.session, "/buildings", tt.required)
			require.Equal(t, tt.outcome, decision.Outcome)
		})
	}
}

func TestCheck_RedirectCarriesOrigin(t *testing.T) {
	decision := guard.Check(auth.Session{Status: auth.StatusUnauthenticated}, "/buildings/4", users.RoleOwner)
	require.Equal(t, guard.OutcomeRedirectToLogin, decision.Outcome)
	require.Equal(t, "/login", decision.RedirectTo)
	require.Equal(t, "/buildings/4", decision.From)
}

func TestCheck_DenyExplainsRoles(t *testing.T) {
	decision := guard.Check(sessionWith(users.RoleTenant), "/buildings", "OWNER")
	require.Equal(t, guard.OutcomeDeny, decision.Outcome)
	require.Equal(t, users.RoleType("OWNER"), decision.RequiredRole)
	require.Equal(t, []users.RoleType{users.RoleTenant}, decision.ActualRoles)
	require.Contains(t, decision.Message(), "Required role: OWNER")
	require.Contains(t, decision.Message(), "Your roles: ROLE_TENANT")
}

type staticSession auth.Session

func (s staticSession) Session() auth.Session {
	return auth.Session(s)
}

func TestRouter_Navigate(t *testing.T) {
	owner := guard.NewRouter(staticSession(sessionWith(users.RoleOwner)))
	tenant := guard.NewRouter(staticSession(sessionWith(users.RoleTenant)))
	anonymous := guard.NewRouter(staticSession(auth.Session{Status: auth.StatusUnauthenticated}))

	tests := []struct {
		name    string
		router  *guard.Router
		path    string
		outcome guard.Outcome
	}{
		{"root redirects to login", owner, "/", guard.OutcomeRedirectToLogin},
		{"login is public", anonymous, "/login", guard.OutcomeAllow},
		{"tenant register is public", anonymous, "/tenant-register", guard.OutcomeAllow},
		{"dashboard needs login", anonymous, "/dashboard", guard.OutcomeRedirectToLogin},
		{"dashboard for tenant", tenant, "/dashboard", guard.OutcomeAllow},
		{"buildings for owner", owner, "/buildings", guard.OutcomeAllow},
		{"buildings for tenant", tenant, "/buildings", guard.OutcomeDeny},
		{"building detail", owner, "/buildings/12", guard.OutcomeAllow},
		{"building edit for tenant", tenant, "/buildings/12/edit", guard.OutcomeDeny},
		{"unit detail for tenant", tenant, "/units/3", guard.OutcomeAllow},
		{"unit create for tenant", tenant, "/units/create", guard.OutcomeDeny},
		{"my unit for owner", owner, "/my-unit", guard.OutcomeDeny},
		{"profile for tenant", tenant, "/profile", guard.OutcomeAllow},
		{"trailing slash and query", owner, "/tenants/?page=2", guard.OutcomeAllow},
		{"unknown path", owner, "/nowhere", guard.OutcomeNotFound},
		{"too deep", owner, "/buildings/1/edit/more", guard.OutcomeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.outcome, tt.router.Navigate(tt.path).Outcome)
		})
	}
}

func TestRouter_LiteralBeatsParameter(t *testing.T) {
	router := guard.NewRouter(staticSession(sessionWith(users.RoleOwner)))

	route, ok := router.Match("/buildings/create")
	require.True(t, ok)
	require.Equal(t, guard.RouteBuildingCreate, route.Pattern)

	route, ok = router.Match("/units/42")
	require.True(t, ok)
	require.Equal(t, guard.RouteUnit, route.Pattern)
	require.Empty(t, route.RequiredRole)
}

func TestNavigator_Watch(t *testing.T) {
	events := make(chan auth.Event, 2)
	redirects := make(chan string, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		guard.Navigator{}.Watch(ctx, events, func(path string) { redirects <- path })
		close(done)
	}()

	events <- auth.Event{Kind: auth.EventLoggedIn}
	events <- auth.Event{Kind: auth.EventLoggedOut, Reason: auth.ReasonUnauthorized, RedirectTo: "/login"}

	select {
	case path := <-redirects:
		require.Equal(t, "/login", path)
	case <-time.After(time.Second):
		require.FailNow(t, "no redirect after logout")
	}

	close(events)
	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "watch did not stop when events closed")
	}
	require.Empty(t, redirects)
}

func TestNavigator_FollowsManagerLogout(t *testing.T) {
	m, err := auth.NewManager(tokenstoreMemory(), nopAuthenticator{}, nopRegistrar{})
	require.NoError(t, err)
	m.Start()
	events, unsubscribe := m.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	redirects := make(chan string, 1)
	go guard.Navigator{}.Watch(ctx, events, func(path string) { redirects <- path })

	m.ForceLogout(auth.ReasonUnauthorized)

	select {
	case path := <-redirects:
		require.Equal(t, "/login", path)
	case <-time.After(time.Second):
		require.FailNow(t, "no redirect after forced logout")
	}
	require.Equal(t, guard.OutcomeRedirectToLogin, guard.NewRouter(m).Navigate("/dashboard").Outcome)
}

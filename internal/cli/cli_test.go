package cli_test

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-colten/guard"
	"github.com/jrsteele09/go-colten/internal/cli"
	"github.com/jrsteele09/go-colten/internal/config"
	"github.com/jrsteele09/go-colten/server"
	"github.com/jrsteele09/go-colten/server/propertyrepo"
	"github.com/jrsteele09/go-colten/tokenstore"
	fakeuserrepo "github.com/jrsteele09/go-colten/users/repofake"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

type harness struct {
	t     *testing.T
	v     *viper.Viper
	store *tokenstore.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	sv := viper.New()
	sv.Set("env", "TEST")
	sv.Set("jwt_secret", "cli-secret")
	s, err := server.New(config.New(sv), fakeuserrepo.NewFakeAccountRepo(), propertyrepo.NewInMemoryRepo())
	require.NoError(t, err)
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	v := viper.New()
	v.Set("env", "TEST")
	v.Set("log_level", "error")
	v.Set("api_base_url", srv.URL+"/api")
	v.Set("cache_ttl", "1m")
	return &harness{t: t, v: v, store: tokenstore.NewMemoryStore()}
}

// run executes one colten invocation. The session store outlives the invocation, as the
// session directory does between real runs.
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd(cli.WithViper(h.v), cli.WithTokenStore(h.store), cli.WithOutput(&out))
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) loginOwner() {
	h.t.Helper()
	out, err := h.run("login", "--email", server.DemoOwnerEmail, "--password", server.DemoOwnerPassword)
	require.NoError(h.t, err)
	require.Contains(h.t, out, "Logged in as Olivia Owner (Owner)")
}

func TestOwnerSession(t *testing.T) {
	h := newHarness(t)
	h.loginOwner()

	out, err := h.run("whoami")
	require.NoError(t, err)
	require.Contains(t, out, server.DemoOwnerEmail)
	require.Contains(t, out, "ROLE_OWNER")

	out, err = h.run("buildings", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Harbour View")

	out, err = h.run("buildings", "create", "--name", "Elm Court", "--address", "9 Elm St", "--floors", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Created building 2: Elm Court")

	out, err = h.run("buildings", "get", "1")
	require.NoError(t, err)
	require.Contains(t, out, server.DemoRoomCode)
	require.Contains(t, out, "1500.00")

	out, err = h.run("units", "list", "--building", "1", "--available")
	require.NoError(t, err)
	require.Contains(t, out, "1A")

	out, err = h.run("dashboard")
	require.NoError(t, err)
	require.Contains(t, out, "Buildings")

	out, err = h.run("open", "/my-unit")
	require.NoError(t, err)
	require.Contains(t, out, "Access denied")

	out, err = h.run("logout")
	require.NoError(t, err)
	require.Contains(t, out, "Logged out")

	_, err = h.run("buildings", "list")
	var navErr *cli.NavigationError
	require.True(t, errors.As(err, &navErr))
	require.Equal(t, guard.OutcomeRedirectToLogin, navErr.Decision.Outcome)
	require.Equal(t, "/buildings", navErr.Decision.From)

	out, err = h.run("whoami")
	require.NoError(t, err)
	require.Contains(t, out, "Not logged in")
}

func TestTenantRegistration(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("tenant-register",
		"--first-name", "Tom", "--last-name", "Tenant",
		"--email", "tom@colten.dev", "--password", "Password123",
		"--room-code", "demo2024")
	require.NoError(t, err)
	require.Contains(t, out, "Room code matches unit 1A at Harbour View")
	require.Contains(t, out, "Welcome, Tom Tenant!")

	out, err = h.run("dashboard")
	require.NoError(t, err)
	require.Contains(t, out, "1A")

	_, err = h.run("buildings", "list")
	var navErr *cli.NavigationError
	require.True(t, errors.As(err, &navErr))
	require.Equal(t, guard.OutcomeDeny, navErr.Decision.Outcome)

	_, err = h.run("tenant-register",
		"--first-name", "Sam", "--last-name", "Second",
		"--email", "sam@colten.dev", "--password", "Password123",
		"--room-code", "NOPE0000")
	require.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("register", "--first-name", "Will", "--last-name", "Weak", "--email", "will@colten.dev", "--password", "weakpass")
	require.ErrorContains(t, err, "uppercase")

	_, err = h.run("register", "--first-name", "Will", "--last-name", "Weak", "--email", "not-an-email", "--password", "Password123")
	require.ErrorContains(t, err, "valid email")

	out, err := h.run("register", "--first-name", "Nina", "--last-name", "New", "--email", "nina@colten.dev", "--password", "Password123")
	require.NoError(t, err)
	require.Contains(t, out, "Welcome, Nina New! You are signed in as Owner.")
}

func TestOpen(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "redirect to /login"},
		{path: "/login", want: "allowed"},
		{path: "/buildings?tab=all", want: "redirect to /login (from /buildings)"},
		{path: "/nowhere", want: "page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out, err := h.run("open", tt.path)
			require.NoError(t, err)
			require.Contains(t, out, tt.want)
		})
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("version")
	require.NoError(t, err)
	require.Contains(t, out, "Colten dev")
}

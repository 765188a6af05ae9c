package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-colten/apiclient"
	"github.com/jrsteele09/go-colten/auth"
	colterrors "github.com/jrsteele09/go-colten/internal/errors"
	"github.com/jrsteele09/go-colten/token"
	"github.com/jrsteele09/go-colten/tokenstore"
	"github.com/jrsteele09/go-colten/users"
)

func TestAuthAPI_Login(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   error
	}{
		{"unauthorized", http.StatusUnauthorized, ``, colterrors.ErrInvalidCredentials},
		{"bad request wording", http.StatusBadRequest, `{"message":"Error: Invalid email or password!"}`, colterrors.ErrInvalidCredentials},
		{"other validation", http.StatusBadRequest, `{"message":"Email is required"}`, colterrors.ErrValidation},
		{"server", http.StatusInternalServerError, ``, colterrors.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()
			inv := &recordingInvalidator{}
			api := apiclient.NewAuthAPI(apiclient.New(srv.URL, apiclient.WithCredentials(staticCredential("old")), apiclient.WithInvalidator(inv)))

			_, err := api.Login(context.Background(), auth.LoginRequest{Email: "a@example.com", Password: "x"})
			require.ErrorIs(t, err, tt.kind)
			require.Empty(t, inv.calls())
		})
	}
}

func TestAuthAPI_LoginDecodesRoleShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"token":"t","type":"Bearer","id":5,"email":"` + req.Email + `","firstName":"A","lastName":"B","role":"OWNER"}`))
	}))
	defer srv.Close()

	resp, err := apiclient.NewAuthAPI(apiclient.New(srv.URL)).Login(context.Background(), auth.LoginRequest{Email: "a@example.com", Password: "x"})
	require.NoError(t, err)
	require.Equal(t, int64(5), resp.ID)
	require.Equal(t, []users.RoleType{users.RoleOwner}, resp.Identity().Roles)
}

func TestAuthAPI_RoomCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["roomCode"] != "ABCD1234" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Invalid room code"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":3,"unitNumber":"2B","roomCode":"ABCD1234","building":{"id":1,"name":"Maple","address":"1 Elm St"}}`))
	}))
	defer srv.Close()
	api := apiclient.NewAuthAPI(apiclient.New(srv.URL))

	unit, err := api.ValidateRoomCode(context.Background(), " abcd1234 ")
	require.NoError(t, err)
	require.Equal(t, "2B", unit.UnitNumber)
	require.Equal(t, "1 Elm St", unit.Building.Address)

	_, err = api.ValidateRoomCode(context.Background(), "ZZZZ9999")
	require.ErrorIs(t, err, colterrors.ErrRoomCodeInvalid)

	_, err = api.ValidateRoomCode(context.Background(), "short")
	require.ErrorIs(t, err, colterrors.ErrRoomCodeInvalid)
}

// TestUnauthorizedLogsOutSession wires the client to a real session manager: a 401 on
// a resource call ends the session and publishes a logout redirect.
func TestUnauthorizedLogsOutSession(t *testing.T) {
	now := time.Now()
	signed, err := token.Issue(token.NewHMACSigner("secret"), "owner@example.com", nil, now, time.Hour)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			_, _ = w.Write([]byte(`{"token":"` + signed + `","id":1,"email":"owner@example.com","firstName":"O","lastName":"W","role":["ROLE_OWNER"]}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	store := tokenstore.NewMemoryStore()
	var manager *auth.Manager
	client := apiclient.New(srv.URL,
		apiclient.WithCredentials(store),
		apiclient.WithInvalidator(invalidatorFunc(func(c string, r auth.LogoutReason) bool { return manager.Invalidate(c, r) })),
	)
	api := apiclient.NewAuthAPI(client)
	manager, err = auth.NewManager(store, api, api)
	require.NoError(t, err)
	manager.Start()

	_, err = manager.Login(context.Background(), "owner@example.com", "Password1!")
	require.NoError(t, err)
	events, unsubscribe := manager.Subscribe()
	defer unsubscribe()

	_, err = client.Buildings().List(context.Background())
	require.ErrorIs(t, err, colterrors.ErrUnauthorized)
	require.Equal(t, auth.StatusUnauthenticated, manager.Session().Status)

	select {
	case ev := <-events:
		require.Equal(t, auth.EventLoggedOut, ev.Kind)
		require.Equal(t, auth.ReasonUnauthorized, ev.Reason)
		require.Equal(t, "/login", ev.RedirectTo)
	case <-time.After(time.Second):
		require.FailNow(t, "no logout event")
	}
}

type invalidatorFunc func(string, auth.LogoutReason) bool

func (f invalidatorFunc) Invalidate(credential string, reason auth.LogoutReason) bool {
	return f(credential, reason)
}

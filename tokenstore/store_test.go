package tokenstore_test

import (
	"errors"
	"testing"

	"github.com/jrsteele09/go-colten/tokenstore"
	"github.com/jrsteele09/go-colten/users"
	"github.com/stretchr/testify/require"
)

func testIdentity() *users.Identity {
	return &users.Identity{
		ID:        1,
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		Roles:     []users.RoleType{users.RoleOwner},
	}
}

func storeFactories(t *testing.T) map[string]func() *tokenstore.Store {
	t.Helper()
	return map[string]func() *tokenstore.Store{
		"memory": tokenstore.NewMemoryStore,
		"file": func() *tokenstore.Store {
			s, err := tokenstore.NewFileStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
	}
}

func TestStore_SetGetClear(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			_, _, ok := s.Get()
			require.False(t, ok)

			require.NoError(t, s.Set("token-1", testIdentity()))
			cred, id, ok := s.Get()
			require.True(t, ok)
			require.Equal(t, "token-1", cred)
			require.Equal(t, testIdentity(), id)

			replacement := testIdentity()
			replacement.Email = "c@d.com"
			require.NoError(t, s.Set("token-2", replacement))
			cred, id, ok = s.Get()
			require.True(t, ok)
			require.Equal(t, "token-2", cred)
			require.Equal(t, "c@d.com", id.Email)

			require.NoError(t, s.Clear())
			_, _, ok = s.Get()
			require.False(t, ok)
			_, ok = s.Credential()
			require.False(t, ok)

			require.NoError(t, s.Clear(), "clearing an empty store is a no-op")
		})
	}
}

func TestStore_FileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	first, err := tokenstore.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("persisted", testIdentity()))

	second, err := tokenstore.NewFileStore(dir)
	require.NoError(t, err)
	cred, id, ok := second.Get()
	require.True(t, ok)
	require.Equal(t, "persisted", cred)
	require.Equal(t, []users.RoleType{users.RoleOwner}, id.Roles)
}

func TestStore_FailsSoft(t *testing.T) {
	tests := []struct {
		name  string
		items map[string]string
	}{
		{"credential only", map[string]string{tokenstore.TokenKey: "t"}},
		{"identity only", map[string]string{tokenstore.IdentityKey: `{"roles":["ROLE_OWNER"]}`}},
		{"malformed identity", map[string]string{tokenstore.TokenKey: "t", tokenstore.IdentityKey: `{"id":`}},
		{"identity without roles", map[string]string{tokenstore.TokenKey: "t", tokenstore.IdentityKey: `{"id":1}`}},
		{"roles of wrong type", map[string]string{tokenstore.TokenKey: "t", tokenstore.IdentityKey: `{"roles":"nope"}`}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots := tokenstore.NewMemorySlots()
			for k, v := range tc.items {
				require.NoError(t, slots.SetItem(k, v))
			}
			cred, id, ok := tokenstore.New(slots).Get()
			require.False(t, ok)
			require.Empty(t, cred)
			require.Nil(t, id)
		})
	}
}

func TestStore_LegacyIdentityRole(t *testing.T) {
	slots := tokenstore.NewMemorySlots()
	require.NoError(t, slots.SetItem(tokenstore.TokenKey, "t"))
	require.NoError(t, slots.SetItem(tokenstore.IdentityKey, `{"id":1,"email":"dev@example.com","role":"OWNER"}`))

	_, id, ok := tokenstore.New(slots).Get()
	require.True(t, ok)
	require.True(t, id.IsOwner())
}

type failingSlots struct {
	*tokenstore.MemorySlots
	failKey string
}

func (f failingSlots) SetItem(key, value string) error {
	if key == f.failKey {
		return errors.New("disk full")
	}
	return f.MemorySlots.SetItem(key, value)
}

func TestStore_SetRollsBackIdentity(t *testing.T) {
	slots := failingSlots{MemorySlots: tokenstore.NewMemorySlots(), failKey: tokenstore.TokenKey}
	s := tokenstore.New(slots)

	require.ErrorContains(t, s.Set("t", testIdentity()), "disk full")
	_, ok := slots.GetItem(tokenstore.IdentityKey)
	require.False(t, ok)
}

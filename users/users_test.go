package users_test

import (
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-colten/users"
	"github.com/stretchr/testify/require"
)

func TestIdentity_Predicates(t *testing.T) {
	owner := &users.Identity{FirstName: "Ada", LastName: "Lovelace", Roles: []users.RoleType{users.RoleOwner}}
	bareTenant := &users.Identity{Roles: []users.RoleType{"TENANT"}}
	var nobody *users.Identity

	require.True(t, owner.IsOwner())
	require.False(t, owner.IsTenant())
	require.Equal(t, "Owner", owner.RoleLabel())
	require.Equal(t, "Ada Lovelace", owner.DisplayName())

	require.True(t, bareTenant.IsTenant())
	require.True(t, bareTenant.HasRole(users.RoleType("TENANT")))
	require.Equal(t, "Tenant", bareTenant.RoleLabel())

	require.False(t, nobody.IsOwner())
	require.Equal(t, "", nobody.DisplayName())
	require.Equal(t, "Unknown", nobody.RoleLabel())
	require.Nil(t, nobody.RoleNames())
}

func TestIdentity_UnmarshalLegacyRole(t *testing.T) {
	var id users.Identity
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"email":"dev@example.com","role":"OWNER","firstName":"Dev","lastName":"User"}`), &id))
	require.Equal(t, []users.RoleType{users.RoleOwner}, id.Roles)
	require.Equal(t, "Dev User", id.DisplayName())

	var both users.Identity
	require.NoError(t, json.Unmarshal([]byte(`{"roles":["ROLE_TENANT"],"role":"OWNER"}`), &both))
	require.Equal(t, []users.RoleType{users.RoleTenant}, both.Roles)
}

func TestValidatePasswordStrength(t *testing.T) {
	require.NoError(t, users.ValidatePasswordStrength("Password1"))
	require.ErrorContains(t, users.ValidatePasswordStrength("Pass1"), "at least 8 characters")
	require.ErrorContains(t, users.ValidatePasswordStrength("password1"), "uppercase")
	require.ErrorContains(t, users.ValidatePasswordStrength("PASSWORD1"), "lowercase")
	require.ErrorContains(t, users.ValidatePasswordStrength("Passwordx"), "number")
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, users.ValidateEmail("a@b.com"))
	require.Error(t, users.ValidateEmail("a@b"))
	require.Error(t, users.ValidateEmail("@b.com"))
	require.Error(t, users.ValidateEmail("a b@c.com"))
}

func TestPasswordHash(t *testing.T) {
	hash, err := users.HashPassword("Password1")
	require.NoError(t, err)
	require.True(t, users.CheckPasswordHash("Password1", hash))
	require.False(t, users.CheckPasswordHash("Password2", hash))
}

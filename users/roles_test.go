package users_test

import (
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-colten/users"
	"github.com/stretchr/testify/require"
)

func decodeClaim(t *testing.T, payload string) users.RoleClaim {
	t.Helper()
	var body struct {
		Role users.RoleClaim `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &body))
	return body.Role
}

func TestResolveRoles(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		defaults []users.RoleType
		want     []users.RoleType
	}{
		{"bare string is prefixed", `{"role":"OWNER"}`, nil, []users.RoleType{users.RoleOwner}},
		{"prefixed string is not double prefixed", `{"role":"ROLE_TENANT"}`, nil, []users.RoleType{users.RoleTenant}},
		{"array passes through", `{"role":["ROLE_OWNER"]}`, nil, []users.RoleType{users.RoleOwner}},
		{"array order kept", `{"role":["ROLE_TENANT","ROLE_ADMIN"]}`, nil, []users.RoleType{users.RoleTenant, users.RoleAdmin}},
		{"array non strings dropped", `{"role":["ROLE_OWNER", 7, null]}`, nil, []users.RoleType{users.RoleOwner}},
		{"missing uses owner default", `{}`, []users.RoleType{users.RoleOwner}, []users.RoleType{users.RoleOwner}},
		{"null uses tenant default", `{"role":null}`, []users.RoleType{users.RoleTenant}, []users.RoleType{users.RoleTenant}},
		{"number is unrecognised", `{"role":12}`, []users.RoleType{users.RoleTenant}, []users.RoleType{users.RoleTenant}},
		{"object is unrecognised", `{"role":{"name":"OWNER"}}`, []users.RoleType{users.RoleOwner}, []users.RoleType{users.RoleOwner}},
		{"empty string is absent", `{"role":""}`, []users.RoleType{users.RoleOwner}, []users.RoleType{users.RoleOwner}},
		{"empty array is absent", `{"role":[]}`, []users.RoleType{users.RoleTenant}, []users.RoleType{users.RoleTenant}},
		{"absent without default", `{}`, nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claim := decodeClaim(t, tc.payload)
			require.Equal(t, tc.want, users.ResolveRoles(claim, tc.defaults...))
		})
	}
}

func TestResolveRoles_Idempotent(t *testing.T) {
	first := users.ResolveRoles(users.SingleRole("OWNER"))
	names := make([]string, 0, len(first))
	for _, r := range first {
		names = append(names, string(r))
	}
	second := users.ResolveRoles(users.RoleList(names...))
	require.Equal(t, first, second)
}

func TestResolveRoles_DefaultsAreCopied(t *testing.T) {
	defaults := []users.RoleType{users.RoleOwner}
	roles := users.ResolveRoles(users.RoleClaim{}, defaults...)
	roles[0] = users.RoleAdmin
	require.Equal(t, users.RoleOwner, defaults[0])
}

func TestRoleClaim_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(struct {
		Role users.RoleClaim `json:"role"`
	}{users.SingleRole("TENANT")})
	require.NoError(t, err)
	require.JSONEq(t, `{"role":"TENANT"}`, string(out))

	require.True(t, decodeClaim(t, `{"role":null}`).IsAbsent())
}

func TestRoleType_Forms(t *testing.T) {
	require.Equal(t, users.RoleOwner, users.RoleType("OWNER").Canonical())
	require.Equal(t, users.RoleOwner, users.RoleOwner.Canonical())
	require.Equal(t, "TENANT", users.RoleTenant.Bare())
	require.Equal(t, users.RoleType(""), users.Canonical(""))
}

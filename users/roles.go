package users

import (
	"encoding/json"
	"strings"

	"github.com/jrsteele09/go-colten/internal/utils"
)

// RoleType is a role token. Canonical tokens carry the ROLE_ prefix.
type RoleType string

const (
	RolePrefix = "ROLE_"

	RoleOwner  RoleType = "ROLE_OWNER"
	RoleTenant RoleType = "ROLE_TENANT"
	RoleAdmin  RoleType = "ROLE_ADMIN"
)

// Canonical returns the ROLE_ prefixed form of r.
func (r RoleType) Canonical() RoleType {
	return Canonical(string(r))
}

// Bare strips the ROLE_ prefix, e.g. ROLE_OWNER -> OWNER.
func (r RoleType) Bare() string {
	return strings.TrimPrefix(string(r), RolePrefix)
}

// Canonical prefixes role with ROLE_ unless it already has it. Empty stays empty.
func Canonical(role string) RoleType {
	if role == "" || strings.HasPrefix(role, RolePrefix) {
		return RoleType(role)
	}
	return RoleType(RolePrefix + role)
}

type roleClaimKind int

const (
	roleClaimAbsent roleClaimKind = iota
	roleClaimSingle
	roleClaimList
)

// RoleClaim is the role field of a server payload, which arrives as a bare string,
// a prefixed string, an array of prefixed strings, null or not at all.
// Decoding never fails: anything unrecognised is recorded as absent.
type RoleClaim struct {
	kind   roleClaimKind
	single string
	list   []string
}

// SingleRole builds a claim holding one role string.
func SingleRole(role string) RoleClaim {
	if role == "" {
		return RoleClaim{}
	}
	return RoleClaim{kind: roleClaimSingle, single: role}
}

// RoleList builds a claim holding a list of role strings.
func RoleList(roles ...string) RoleClaim {
	if len(roles) == 0 {
		return RoleClaim{}
	}
	return RoleClaim{kind: roleClaimList, list: append([]string(nil), roles...)}
}

// IsAbsent reports whether no usable role was present.
func (c RoleClaim) IsAbsent() bool {
	return c.kind == roleClaimAbsent
}

func (c *RoleClaim) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*c = RoleClaim{}
		return nil
	}
	switch t := v.(type) {
	case string:
		*c = SingleRole(t)
	case []any:
		*c = RoleList(utils.ToStringSlice(t)...)
	default:
		*c = RoleClaim{}
	}
	return nil
}

func (c RoleClaim) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case roleClaimSingle:
		return json.Marshal(c.single)
	case roleClaimList:
		return json.Marshal(c.list)
	default:
		return []byte("null"), nil
	}
}

// Resolve is shorthand for ResolveRoles(c, defaults...).
func (c RoleClaim) Resolve(defaults ...RoleType) []RoleType {
	return ResolveRoles(c, defaults...)
}

// ResolveRoles converts a role claim into canonical role tokens.
// List elements pass through unchanged, a single string is prefixed unless it already is,
// and an absent claim yields a copy of defaults. Callers choose defaults per operation.
func ResolveRoles(claim RoleClaim, defaults ...RoleType) []RoleType {
	switch claim.kind {
	case roleClaimList:
		roles := make([]RoleType, 0, len(claim.list))
		for _, r := range claim.list {
			roles = append(roles, RoleType(r))
		}
		return roles
	case roleClaimSingle:
		return []RoleType{Canonical(claim.single)}
	default:
		if len(defaults) == 0 {
			return nil
		}
		return append([]RoleType(nil), defaults...)
	}
}

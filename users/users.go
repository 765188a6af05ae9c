package users

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the cached profile of the authenticated user.
// Roles always hold canonical tokens once the identity has passed through the role resolver.
type Identity struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Roles     []RoleType `json:"roles"`
}

// UnmarshalJSON accepts the legacy single "role" field written by older clients and
// canonicalises it into Roles. An explicit "roles" array wins.
func (i *Identity) UnmarshalJSON(data []byte) error {
	type identityFields Identity
	var raw struct {
		identityFields
		Role RoleClaim `json:"role"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Identity(raw.identityFields)
	if len(i.Roles) == 0 {
		i.Roles = ResolveRoles(raw.Role)
	}
	return nil
}

// HasRole reports whether the identity carries role, comparing canonical forms so that
// OWNER and ROLE_OWNER match each other.
func (i *Identity) HasRole(role RoleType) bool {
	if i == nil || role == "" {
		return false
	}
	want := role.Canonical()
	return lo.ContainsBy(i.Roles, func(r RoleType) bool { return r.Canonical() == want })
}

func (i *Identity) IsOwner() bool {
	return i.HasRole(RoleOwner)
}

func (i *Identity) IsTenant() bool {
	return i.HasRole(RoleTenant)
}

func (i *Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}

// DisplayName is "First Last", empty for a nil identity.
func (i *Identity) DisplayName() string {
	if i == nil {
		return ""
	}
	return i.FirstName + " " + i.LastName
}

// RoleLabel is the human label of the primary role: Owner, Tenant or Unknown.
func (i *Identity) RoleLabel() string {
	switch {
	case i.IsOwner():
		return "Owner"
	case i.IsTenant():
		return "Tenant"
	default:
		return "Unknown"
	}
}

// RoleNames returns the roles as plain strings, e.g. for display.
func (i *Identity) RoleNames() []string {
	if i == nil {
		return nil
	}
	return lo.Map(i.Roles, func(r RoleType, _ int) string { return string(r) })
}

// Account is a stored user of the mock backend.
type Account struct {
	Identity
	PasswordHash string `json:"-"`
	Phone        string `json:"phone,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	RoomCode     string `json:"roomCode,omitempty"`
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}

// ValidateEmail is the loose shape check used before calling the backend.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || strings.ContainsAny(email, " \t") || !strings.Contains(email[at+1:], ".") || strings.HasSuffix(email, ".") {
		return fmt.Errorf("please enter a valid email address")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

package auth

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jrsteele09/go-colten/users"
)

// AuthResponse is what the authentication endpoints return.
type AuthResponse struct {
	Token     string          `json:"token"`
	Type      string          `json:"type,omitempty"`
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Role      users.RoleClaim `json:"role"`
	Message   string          `json:"message,omitempty"`
}

// Identity builds the identity described by the response, resolving the role claim with
// the caller's defaults.
func (r *AuthResponse) Identity(defaults ...users.RoleType) *users.Identity {
	return &users.Identity{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Roles:     r.Role.Resolve(defaults...),
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest registers an owner account. Role is the bare server role, e.g. OWNER.
type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone,omitempty"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName,omitempty"`
}

// TenantRegistrationRequest registers a tenant against a unit's room code.
// Dates use the yyyy-MM-dd form.
type TenantRegistrationRequest struct {
	FirstName             string           `json:"firstName"`
	LastName              string           `json:"lastName"`
	Email                 string           `json:"email"`
	Password              string           `json:"password"`
	Phone                 string           `json:"phone,omitempty"`
	RoomCode              string           `json:"roomCode"`
	DateOfBirth           string           `json:"dateOfBirth,omitempty"`
	Employer              string           `json:"employer,omitempty"`
	JobTitle              string           `json:"jobTitle,omitempty"`
	MonthlyIncome         *decimal.Decimal `json:"monthlyIncome,omitempty"`
	EmergencyContactName  string           `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string           `json:"emergencyContactPhone,omitempty"`
	NumberOfOccupants     int              `json:"numberOfOccupants,omitempty"`
	HasPets               bool             `json:"hasPets,omitempty"`
	PetDescription        string           `json:"petDescription,omitempty"`
	Smoker                bool             `json:"smoker,omitempty"`
	LeaseStartDate        string           `json:"leaseStartDate,omitempty"`
	LeaseEndDate          string           `json:"leaseEndDate,omitempty"`
	MoveInDate            string           `json:"moveInDate,omitempty"`
}

// Authenticator is the remote authentication service.
type Authenticator interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
}

// TenantRegistrar performs tenant registration. Implementations are swappable so a
// development fallback can stand in for the real endpoint.
type TenantRegistrar interface {
	RegisterTenant(ctx context.Context, req TenantRegistrationRequest) (*AuthResponse, error)
}

// TokenStore is the persistence the manager needs from tokenstore.Store.
type TokenStore interface {
	Set(credential string, identity *users.Identity) error
	Get() (string, *users.Identity, bool)
	Credential() (string, bool)
	Clear() error
}

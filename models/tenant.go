package models

import "github.com/shopspring/decimal"

type Tenant struct {
	ID                    int64                 `json:"id"`
	Email                 string                `json:"email"`
	FirstName             string                `json:"firstName"`
	LastName              string                `json:"lastName"`
	PhoneNumber           string                `json:"phoneNumber,omitempty"`
	Unit                  *Unit                 `json:"unit,omitempty"`
	BackgroundCheckStatus BackgroundCheckStatus `json:"backgroundCheckStatus,omitempty"`
	DateOfBirth           string                `json:"dateOfBirth,omitempty"`
	Employer              string                `json:"employer,omitempty"`
	JobTitle              string                `json:"jobTitle,omitempty"`
	MonthlyIncome         *decimal.Decimal      `json:"monthlyIncome,omitempty"`
	EmergencyContactName  string                `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string                `json:"emergencyContactPhone,omitempty"`
	NumberOfOccupants     int                   `json:"numberOfOccupants,omitempty"`
	HasPets               bool                  `json:"hasPets,omitempty"`
	PetDescription        string                `json:"petDescription,omitempty"`
	Smoker                bool                  `json:"smoker,omitempty"`
	LeaseStartDate        string                `json:"leaseStartDate,omitempty"`
	LeaseEndDate          string                `json:"leaseEndDate,omitempty"`
	MoveInDate            string                `json:"moveInDate,omitempty"`
	MoveOutDate           string                `json:"moveOutDate,omitempty"`
	IsActive              bool                  `json:"isActive,omitempty"`
	EmailVerified         bool                  `json:"emailVerified,omitempty"`
	CreatedAt             string                `json:"createdAt,omitempty"`
	UpdatedAt             string                `json:"updatedAt,omitempty"`
}

func (t Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

// TenantUpdate carries the fields a tenant or owner may change.
type TenantUpdate struct {
	PhoneNumber           string           `json:"phoneNumber,omitempty"`
	Employer              string           `json:"employer,omitempty"`
	JobTitle              string           `json:"jobTitle,omitempty"`
	MonthlyIncome         *decimal.Decimal `json:"monthlyIncome,omitempty"`
	EmergencyContactName  string           `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string           `json:"emergencyContactPhone,omitempty"`
	NumberOfOccupants     int              `json:"numberOfOccupants,omitempty"`
	HasPets               *bool            `json:"hasPets,omitempty"`
	PetDescription        string           `json:"petDescription,omitempty"`
	Smoker                *bool            `json:"smoker,omitempty"`
}

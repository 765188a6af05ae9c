package models

import "github.com/shopspring/decimal"

// BuildingRef is the short building reference embedded in a unit.
type BuildingRef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type Unit struct {
	ID                 int64           `json:"id"`
	UnitNumber         string          `json:"unitNumber"`
	Floor              int             `json:"floor"`
	Bedrooms           int             `json:"bedrooms"`
	Bathrooms          int             `json:"bathrooms"`
	SquareFeet         int             `json:"squareFeet"`
	MonthlyRent        decimal.Decimal `json:"monthlyRent"`
	SecurityDeposit    decimal.Decimal `json:"securityDeposit"`
	UnitType           UnitType        `json:"unitType"`
	IsAvailable        bool            `json:"isAvailable"`
	RoomCode           string          `json:"roomCode"`
	Description        string          `json:"description,omitempty"`
	Furnished          bool            `json:"furnished"`
	PetsAllowed        bool            `json:"petsAllowed"`
	SmokingAllowed     bool            `json:"smokingAllowed"`
	HasAirConditioning bool            `json:"hasAirConditioning"`
	HasWashingMachine  bool            `json:"hasWashingMachine"`
	HasDishwasher      bool            `json:"hasDishwasher"`
	HasBalcony         bool            `json:"hasBalcony"`
	LeaseStartDate     string          `json:"leaseStartDate,omitempty"`
	LeaseEndDate       string          `json:"leaseEndDate,omitempty"`
	Building           *BuildingRef    `json:"building,omitempty"`
	Tenant             *Tenant         `json:"tenant,omitempty"`
	CreatedAt          string          `json:"createdAt,omitempty"`
	UpdatedAt          string          `json:"updatedAt,omitempty"`
}

type UnitRequest struct {
	UnitNumber         string           `json:"unitNumber,omitempty"`
	Floor              int              `json:"floor,omitempty"`
	Bedrooms           int              `json:"bedrooms,omitempty"`
	Bathrooms          int              `json:"bathrooms,omitempty"`
	SquareFeet         int              `json:"squareFeet,omitempty"`
	MonthlyRent        *decimal.Decimal `json:"monthlyRent,omitempty"`
	SecurityDeposit    *decimal.Decimal `json:"securityDeposit,omitempty"`
	Description        string           `json:"description,omitempty"`
	UnitType           UnitType         `json:"unitType,omitempty"`
	HasBalcony         bool             `json:"hasBalcony,omitempty"`
	HasDishwasher      bool             `json:"hasDishwasher,omitempty"`
	HasWashingMachine  bool             `json:"hasWashingMachine,omitempty"`
	HasAirConditioning bool             `json:"hasAirConditioning,omitempty"`
	Furnished          bool             `json:"furnished,omitempty"`
	PetsAllowed        bool             `json:"petsAllowed,omitempty"`
	SmokingAllowed     bool             `json:"smokingAllowed,omitempty"`
	IsAvailable        *bool            `json:"isAvailable,omitempty"`
	LeaseStartDate     string           `json:"leaseStartDate,omitempty"`
	LeaseEndDate       string           `json:"leaseEndDate,omitempty"`
	BuildingID         int64            `json:"buildingId,omitempty"`
}

// RoomCodeResponse is returned when a unit's room code is regenerated.
type RoomCodeResponse struct {
	ID         int64        `json:"id"`
	RoomCode   string       `json:"roomCode"`
	UnitNumber string       `json:"unitNumber"`
	Building   *BuildingRef `json:"building,omitempty"`
}

package models

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Building struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zipCode,omitempty"`
	Country       string `json:"country,omitempty"`
	Description   string `json:"description,omitempty"`
	Floors        int    `json:"floors"`
	YearBuilt     int    `json:"yearBuilt,omitempty"`
	ParkingSpaces int    `json:"parkingSpaces,omitempty"`
	HasElevator   bool   `json:"hasElevator,omitempty"`
	HasLaundry    bool   `json:"hasLaundry,omitempty"`
	HasGym        bool   `json:"hasGym,omitempty"`
	HasPool       bool   `json:"hasPool,omitempty"`
	PetFriendly   bool   `json:"petFriendly,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
	Units         []Unit `json:"units,omitempty"`
}

// BuildingRequest creates or updates a building. Zero fields are omitted so a partial
// update leaves them unchanged.
type BuildingRequest struct {
	Name          string `json:"name,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zipCode,omitempty"`
	Country       string `json:"country,omitempty"`
	Description   string `json:"description,omitempty"`
	Floors        int    `json:"floors,omitempty"`
	YearBuilt     int    `json:"yearBuilt,omitempty"`
	ParkingSpaces int    `json:"parkingSpaces,omitempty"`
	HasElevator   bool   `json:"hasElevator,omitempty"`
	HasLaundry    bool   `json:"hasLaundry,omitempty"`
	HasGym        bool   `json:"hasGym,omitempty"`
	HasPool       bool   `json:"hasPool,omitempty"`
	PetFriendly   bool   `json:"petFriendly,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// BuildingStats summarises a building's units.
type BuildingStats struct {
	TotalUnits     int             `json:"totalUnits"`
	AvailableUnits int             `json:"availableUnits"`
	OccupiedUnits  int             `json:"occupiedUnits"`
	OccupancyRate  decimal.Decimal `json:"occupancyRate"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	AverageRent    decimal.Decimal `json:"averageRent"`
}

// ComputeBuildingStats derives occupancy and rent figures. Revenue counts occupied
// units only; the occupancy rate is a percentage rounded to one decimal place.
func ComputeBuildingStats(units []Unit) BuildingStats {
	stats := BuildingStats{
		TotalUnits:    len(units),
		OccupancyRate: decimal.Zero,
		TotalRevenue:  decimal.Zero,
		AverageRent:   decimal.Zero,
	}
	if len(units) == 0 {
		return stats
	}

	occupied := lo.Filter(units, func(u Unit, _ int) bool { return !u.IsAvailable })
	stats.OccupiedUnits = len(occupied)
	stats.AvailableUnits = len(units) - len(occupied)
	stats.TotalRevenue = lo.Reduce(occupied, func(sum decimal.Decimal, u Unit, _ int) decimal.Decimal {
		return sum.Add(u.MonthlyRent)
	}, decimal.Zero)

	allRent := lo.Reduce(units, func(sum decimal.Decimal, u Unit, _ int) decimal.Decimal {
		return sum.Add(u.MonthlyRent)
	}, decimal.Zero)
	total := decimal.NewFromInt(int64(len(units)))
	stats.AverageRent = allRent.Div(total).Round(2)
	stats.OccupancyRate = decimal.NewFromInt(int64(len(occupied))).Mul(decimal.NewFromInt(100)).Div(total).Round(1)
	return stats
}

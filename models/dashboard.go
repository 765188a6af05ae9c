package models

import "github.com/shopspring/decimal"

type OwnerDashboard struct {
	TotalBuildings int             `json:"totalBuildings"`
	TotalUnits     int             `json:"totalUnits"`
	OccupiedUnits  int             `json:"occupiedUnits"`
	AvailableUnits int             `json:"availableUnits"`
	TotalTenants   int             `json:"totalTenants"`
	OpenIssues     int             `json:"openIssues"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
	RecentIssues   []Issue         `json:"recentIssues,omitempty"`
	RecentPayments []Payment       `json:"recentPayments,omitempty"`
}

type TenantDashboard struct {
	Unit           *Unit     `json:"unit,omitempty"`
	UpcomingRent   *Payment  `json:"upcomingRent,omitempty"`
	RecentPayments []Payment `json:"recentPayments,omitempty"`
	OpenIssues     []Issue   `json:"openIssues,omitempty"`
}

// BuildingDashboard is the owner's view of a single building.
type BuildingDashboard struct {
	Building     Building      `json:"building"`
	Stats        BuildingStats `json:"stats"`
	OpenIssues   []Issue       `json:"openIssues,omitempty"`
	RecentIssues []Issue       `json:"recentIssues,omitempty"`
}

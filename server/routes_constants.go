package server

// Route path constants, relative to RouteAPI.
const (
	RouteAPI    = "/api"
	RouteHealth = "/health"

	// Auth Routes
	RouteAuthLogin        = "/auth/login"
	RouteAuthRegister     = "/auth/register"
	RouteTenantRegister   = "/tenants/register"
	RouteValidateRoomCode = "/tenants/validate-room-code"

	// Buildings
	RouteBuildings = "/buildings"
	RouteBuilding  = "/buildings/{id}"

	// Units
	RouteUnits                  = "/units"
	RouteUnit                   = "/units/{id}"
	RouteUnitsByBuilding        = "/units/building/{buildingId}"
	RouteAvailableUnitsByBldg   = "/units/building/{buildingId}/available"
	RouteUnitRegenerateRoomCode = "/units/{id}/regenerate-room-code"

	// Dashboards
	RouteOwnerDashboard  = "/dashboard/owner"
	RouteTenantDashboard = "/dashboard/tenant"
)

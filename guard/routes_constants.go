package guard

// Route path constants
// All application routes are defined here so the CLI and the router agree on them.
const (
	// Public routes
	RouteRoot           = "/"
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteTenantRegister = "/tenant-register"

	// Authenticated routes
	RouteDashboard = "/dashboard"
	RoutePayments  = "/payments"
	RouteIssues    = "/issues"
	RouteUnit      = "/units/:id"

	// Owner routes
	RouteBuildings      = "/buildings"
	RouteBuildingCreate = "/buildings/create"
	RouteBuilding       = "/buildings/:id"
	RouteBuildingEdit   = "/buildings/:id/edit"
	RouteUnits          = "/units"
	RouteUnitCreate     = "/units/create"
	RouteUnitEdit       = "/units/:id/edit"
	RouteTenants        = "/tenants"
	RouteTenant         = "/tenants/:id"

	// Tenant routes
	RouteProfile = "/profile"
	RouteMyUnit  = "/my-unit"
)

package apiclient

import "fmt"

// Endpoint paths, relative to the API base URL.
const (
	EndpointLogin            = "/auth/login"
	EndpointRegister         = "/auth/register"
	EndpointTenantRegister   = "/tenants/register"
	EndpointValidateRoomCode = "/tenants/validate-room-code"
	EndpointTenantProfile    = "/tenants/profile"

	EndpointBuildings = "/buildings"
	EndpointUnits     = "/units"
	EndpointTenants   = "/tenants"
	EndpointIssues    = "/issues"
	EndpointPayments  = "/payments"

	EndpointMyIssues    = "/issues/my-issues"
	EndpointOwnerIssues = "/issues/owner-issues"
	EndpointUrgent      = "/issues/urgent"

	EndpointOwnerDashboard  = "/dashboard/owner"
	EndpointTenantDashboard = "/dashboard/tenant"
)

// authEndpoints answer 401 for bad credentials rather than for a dead session.
var authEndpoints = []string{EndpointLogin, EndpointRegister, EndpointTenantRegister, EndpointValidateRoomCode}

func byID(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}

func byBuilding(base string, buildingID int64) string {
	return fmt.Sprintf("%s/building/%d", base, buildingID)
}

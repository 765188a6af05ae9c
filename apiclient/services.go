package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-colten/models"
)

// BuildingService covers /buildings.
type BuildingService struct{ client *Client }

func (c *Client) Buildings() *BuildingService { return &BuildingService{client: c} }

func (s *BuildingService) List(ctx context.Context) ([]models.Building, error) {
	return Get[[]models.Building](ctx, s.client, EndpointBuildings)
}

func (s *BuildingService) Get(ctx context.Context, id int64) (models.Building, error) {
	return Get[models.Building](ctx, s.client, byID(EndpointBuildings, id))
}

func (s *BuildingService) Create(ctx context.Context, req models.BuildingRequest) (models.Building, error) {
	return Post[models.Building](ctx, s.client, EndpointBuildings, req)
}

func (s *BuildingService) Update(ctx context.Context, id int64, req models.BuildingRequest) (models.Building, error) {
	return Put[models.Building](ctx, s.client, byID(EndpointBuildings, id), req)
}

func (s *BuildingService) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, s.client, byID(EndpointBuildings, id))
}

// UnitService covers /units.
type UnitService struct{ client *Client }

func (c *Client) Units() *UnitService { return &UnitService{client: c} }

func (s *UnitService) List(ctx context.Context) ([]models.Unit, error) {
	return Get[[]models.Unit](ctx, s.client, EndpointUnits)
}

func (s *UnitService) ByBuilding(ctx context.Context, buildingID int64) ([]models.Unit, error) {
	return Get[[]models.Unit](ctx, s.client, byBuilding(EndpointUnits, buildingID))
}

func (s *UnitService) AvailableByBuilding(ctx context.Context, buildingID int64) ([]models.Unit, error) {
	return Get[[]models.Unit](ctx, s.client, byBuilding(EndpointUnits, buildingID)+"/available")
}

func (s *UnitService) Get(ctx context.Context, id int64) (models.Unit, error) {
	return Get[models.Unit](ctx, s.client, byID(EndpointUnits, id))
}

func (s *UnitService) Create(ctx context.Context, req models.UnitRequest) (models.Unit, error) {
	return Post[models.Unit](ctx, s.client, EndpointUnits, req)
}

func (s *UnitService) Update(ctx context.Context, id int64, req models.UnitRequest) (models.Unit, error) {
	return Put[models.Unit](ctx, s.client, byID(EndpointUnits, id), req)
}

func (s *UnitService) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, s.client, byID(EndpointUnits, id))
}

func (s *UnitService) RegenerateRoomCode(ctx context.Context, id int64) (models.RoomCodeResponse, error) {
	return Post[models.RoomCodeResponse](ctx, s.client, byID(EndpointUnits, id)+"/regenerate-room-code", struct{}{})
}

// TenantService covers /tenants.
type TenantService struct{ client *Client }

func (c *Client) Tenants() *TenantService { return &TenantService{client: c} }

func (s *TenantService) List(ctx context.Context) ([]models.Tenant, error) {
	return Get[[]models.Tenant](ctx, s.client, EndpointTenants)
}

func (s *TenantService) ByBuilding(ctx context.Context, buildingID int64) ([]models.Tenant, error) {
	return Get[[]models.Tenant](ctx, s.client, byBuilding(EndpointTenants, buildingID))
}

func (s *TenantService) Get(ctx context.Context, id int64) (models.Tenant, error) {
	return Get[models.Tenant](ctx, s.client, byID(EndpointTenants, id))
}

// Profile is the signed-in tenant's own record.
func (s *TenantService) Profile(ctx context.Context) (models.Tenant, error) {
	return Get[models.Tenant](ctx, s.client, EndpointTenantProfile)
}

func (s *TenantService) Update(ctx context.Context, id int64, req models.TenantUpdate) (models.Tenant, error) {
	return Put[models.Tenant](ctx, s.client, byID(EndpointTenants, id), req)
}

// IssueService covers /issues.
type IssueService struct{ client *Client }

func (c *Client) Issues() *IssueService { return &IssueService{client: c} }

func (s *IssueService) Create(ctx context.Context, req models.IssueRequest) (models.Issue, error) {
	return Post[models.Issue](ctx, s.client, EndpointIssues, req)
}

// Mine lists the signed-in tenant's issues.
func (s *IssueService) Mine(ctx context.Context) ([]models.Issue, error) {
	return Get[[]models.Issue](ctx, s.client, EndpointMyIssues)
}

// ForOwner lists issues across the signed-in owner's buildings.
func (s *IssueService) ForOwner(ctx context.Context) ([]models.Issue, error) {
	return Get[[]models.Issue](ctx, s.client, EndpointOwnerIssues)
}

func (s *IssueService) ByBuilding(ctx context.Context, buildingID int64) ([]models.Issue, error) {
	return Get[[]models.Issue](ctx, s.client, byBuilding(EndpointIssues, buildingID))
}

func (s *IssueService) ByStatus(ctx context.Context, status models.IssueStatus) ([]models.Issue, error) {
	return Get[[]models.Issue](ctx, s.client, EndpointIssues+"/status/"+url.PathEscape(string(status)))
}

func (s *IssueService) Urgent(ctx context.Context) ([]models.Issue, error) {
	return Get[[]models.Issue](ctx, s.client, EndpointUrgent)
}

func (s *IssueService) Get(ctx context.Context, id int64) (models.Issue, error) {
	return Get[models.Issue](ctx, s.client, byID(EndpointIssues, id))
}

func (s *IssueService) Update(ctx context.Context, id int64, req models.IssueRequest) (models.Issue, error) {
	return Put[models.Issue](ctx, s.client, byID(EndpointIssues, id), req)
}

// UpdateStatus sends the status as query parameters, as the backend expects.
func (s *IssueService) UpdateStatus(ctx context.Context, id int64, update models.IssueStatusUpdate) (models.Issue, error) {
	if !update.Status.Valid() {
		return models.Issue{}, fmt.Errorf("unknown issue status %q", update.Status)
	}
	params := url.Values{"status": {string(update.Status)}}
	if update.AdminNotes != "" {
		params.Set("adminNotes", update.AdminNotes)
	}
	return Put[models.Issue](ctx, s.client, byID(EndpointIssues, id)+"/status?"+params.Encode(), nil)
}

func (s *IssueService) Assign(ctx context.Context, id, assigneeID int64) (models.Issue, error) {
	params := url.Values{"assignedToId": {strconv.FormatInt(assigneeID, 10)}}
	return Put[models.Issue](ctx, s.client, byID(EndpointIssues, id)+"/assign?"+params.Encode(), nil)
}

// PaymentService covers /payments.
type PaymentService struct{ client *Client }

func (c *Client) Payments() *PaymentService { return &PaymentService{client: c} }

func (s *PaymentService) Create(ctx context.Context, req models.PaymentRequest) (models.Payment, error) {
	return Post[models.Payment](ctx, s.client, EndpointPayments, req)
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return Get[[]models.Payment](ctx, s.client, EndpointPayments)
}

func (s *PaymentService) Get(ctx context.Context, id int64) (models.Payment, error) {
	return Get[models.Payment](ctx, s.client, byID(EndpointPayments, id))
}

func (s *PaymentService) ByTenant(ctx context.Context, tenantID int64) ([]models.Payment, error) {
	return Get[[]models.Payment](ctx, s.client, fmt.Sprintf("%s/tenant/%d", EndpointPayments, tenantID))
}

func (s *PaymentService) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) (models.Payment, error) {
	params := url.Values{"status": {string(status)}}
	return Put[models.Payment](ctx, s.client, byID(EndpointPayments, id)+"/status?"+params.Encode(), nil)
}

// DashboardService covers /dashboard.
type DashboardService struct{ client *Client }

func (c *Client) Dashboard() *DashboardService { return &DashboardService{client: c} }

func (s *DashboardService) Owner(ctx context.Context) (models.OwnerDashboard, error) {
	return Get[models.OwnerDashboard](ctx, s.client, EndpointOwnerDashboard)
}

func (s *DashboardService) Tenant(ctx context.Context) (models.TenantDashboard, error) {
	return Get[models.TenantDashboard](ctx, s.client, EndpointTenantDashboard)
}

func (s *DashboardService) Building(ctx context.Context, buildingID int64) (models.BuildingDashboard, error) {
	return Get[models.BuildingDashboard](ctx, s.client, fmt.Sprintf("/dashboard/building/%d", buildingID))
}

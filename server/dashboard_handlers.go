package server

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/jrsteele09/go-colten/models"
	"github.com/jrsteele09/go-colten/server/propertyrepo"
)

// OwnerDashboardHandler summarises the principal's buildings. Issues and payments are
// not tracked by the mock backend and are reported as empty.
func (s *Server) OwnerDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buildings, err := s.properties.ListBuildings(ownerFilter(principalFrom(r.Context())))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		units := lo.FlatMap(buildings, func(b *propertyrepo.BuildingRecord, _ int) []models.Unit {
			return s.unitsOf(b.Building.ID)
		})
		stats := models.ComputeBuildingStats(units)
		writeJSON(w, http.StatusOK, models.OwnerDashboard{
			TotalBuildings: len(buildings),
			TotalUnits:     stats.TotalUnits,
			OccupiedUnits:  stats.OccupiedUnits,
			AvailableUnits: stats.AvailableUnits,
			TotalTenants:   lo.CountBy(units, func(u models.Unit) bool { return u.Tenant != nil }),
			TotalRevenue:   stats.TotalRevenue,
			MonthlyRevenue: stats.TotalRevenue,
		})
	}
}

// TenantDashboardHandler returns the unit the principal rents, if any.
func (s *Server) TenantDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := principalFrom(r.Context())
		var dashboard models.TenantDashboard
		if p.Account.RoomCode != "" {
			if unit, err := s.properties.GetUnitByRoomCode(p.Account.RoomCode); err == nil && unit.TenantID == p.ID() {
				view := s.unitView(unit)
				dashboard.Unit = &view
			}
		}
		writeJSON(w, http.StatusOK, dashboard)
	}
}

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jrsteele09/go-colten/users"
)

func (s *Server) initRoutes() chi.Router {
	r := chi.NewRouter()
	for _, mw := range s.StdMiddleware() {
		r.Use(mw)
	}

	r.Get(RouteHealth, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "OK"})
	})

	r.Route(RouteAPI, func(api chi.Router) {
		// Public
		api.Post(RouteAuthLogin, s.LoginHandler())
		api.Post(RouteAuthRegister, s.RegisterHandler())
		api.Post(RouteTenantRegister, s.TenantRegisterHandler())
		api.Post(RouteValidateRoomCode, s.ValidateRoomCodeHandler())

		// Any signed-in account
		api.Group(func(authed chi.Router) {
			authed.Use(s.RequireAuth())

			authed.Get(RouteUnit, s.GetUnitHandler())
			authed.With(s.RequireRole(users.RoleTenant)).Get(RouteTenantDashboard, s.TenantDashboardHandler())

			authed.Group(func(owner chi.Router) {
				owner.Use(s.RequireRole(users.RoleOwner))

				owner.Get(RouteBuildings, s.ListBuildingsHandler())
				owner.Post(RouteBuildings, s.CreateBuildingHandler())
				owner.Get(RouteBuilding, s.GetBuildingHandler())
				owner.Put(RouteBuilding, s.UpdateBuildingHandler())
				owner.Delete(RouteBuilding, s.DeleteBuildingHandler())

				owner.Get(RouteUnits, s.ListUnitsHandler())
				owner.Post(RouteUnits, s.CreateUnitHandler())
				owner.Get(RouteUnitsByBuilding, s.ListBuildingUnitsHandler(false))
				owner.Get(RouteAvailableUnitsByBldg, s.ListBuildingUnitsHandler(true))
				owner.Post(RouteUnitRegenerateRoomCode, s.RegenerateRoomCodeHandler())

				owner.Get(RouteOwnerDashboard, s.OwnerDashboardHandler())
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	return r
}

package guard

import (
	"strings"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/users"
)

// Route is one entry of the route table. Pattern segments starting with ':' match any
// single segment.
type Route struct {
	Pattern      string
	Public       bool
	RequiredRole users.RoleType
	RedirectTo   string
}

// DefaultRoutes is the application's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Pattern: RouteRoot, Public: true, RedirectTo: RouteLogin},
		{Pattern: RouteLogin, Public: true},
		{Pattern: RouteRegister, Public: true},
		{Pattern: RouteTenantRegister, Public: true},

		{Pattern: RouteDashboard},
		{Pattern: RoutePayments},
		{Pattern: RouteIssues},

		{Pattern: RouteBuildings, RequiredRole: users.RoleOwner},
		{Pattern: RouteBuildingCreate, RequiredRole: users.RoleOwner},
		{Pattern: RouteBuilding, RequiredRole: users.RoleOwner},
		{Pattern: RouteBuildingEdit, RequiredRole: users.RoleOwner},
		{Pattern: RouteUnits, RequiredRole: users.RoleOwner},
		{Pattern: RouteUnitCreate, RequiredRole: users.RoleOwner},
		{Pattern: RouteUnit},
		{Pattern: RouteUnitEdit, RequiredRole: users.RoleOwner},
		{Pattern: RouteTenants, RequiredRole: users.RoleOwner},
		{Pattern: RouteTenant, RequiredRole: users.RoleOwner},

		{Pattern: RouteProfile, RequiredRole: users.RoleTenant},
		{Pattern: RouteMyUnit, RequiredRole: users.RoleTenant},
	}
}

// SessionSource supplies the session snapshot for each navigation.
type SessionSource interface {
	Session() auth.Session
}

// Router guards navigation against a route table.
type Router struct {
	sessions SessionSource
	routes   []Route
}

// NewRouter creates a router. With no routes given DefaultRoutes is used.
func NewRouter(sessions SessionSource, routes ...Route) *Router {
	if len(routes) == 0 {
		routes = DefaultRoutes()
	}
	return &Router{sessions: sessions, routes: routes}
}

// Match finds the route for path. Literal patterns take precedence over
// parameterised ones, so /buildings/create never matches /buildings/:id.
func (r *Router) Match(path string) (Route, bool) {
	segments := splitPath(path)
	var param *Route
	for i := range r.routes {
		route := &r.routes[i]
		literal, ok := matchSegments(splitPath(route.Pattern), segments)
		if !ok {
			continue
		}
		if literal {
			return *route, true
		}
		if param == nil {
			param = route
		}
	}
	if param != nil {
		return *param, true
	}
	return Route{}, false
}

// Navigate guards a navigation to path using the current session.
func (r *Router) Navigate(path string) Decision {
	path = normalizePath(path)
	route, ok := r.Match(path)
	switch {
	case !ok:
		return Decision{Outcome: OutcomeNotFound, Path: path}
	case route.RedirectTo != "":
		return Decision{Outcome: OutcomeRedirectToLogin, Path: path, From: path, RedirectTo: route.RedirectTo}
	case route.Public:
		return Decision{Outcome: OutcomeAllow, Path: path}
	default:
		return Check(r.sessions.Session(), path, route.RequiredRole)
	}
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// matchSegments reports whether pattern matches path and whether it did so without
// parameters.
func matchSegments(pattern, path []string) (literal bool, ok bool) {
	if len(pattern) != len(path) {
		return false, false
	}
	literal = true
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			if path[i] == "" {
				return false, false
			}
			literal = false
			continue
		}
		if seg != path[i] {
			return false, false
		}
	}
	return literal, true
}

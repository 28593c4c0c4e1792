package gateway

import (
	"strings"

	"github.com/lumistore/backoffice/internal/pkg/auth"
)

// RouteRoles gates a path subtree by staff role. An empty AllowedRoles
// set admits any authenticated role. This table is the single source of
// truth for role-gated navigation, there is no second map elsewhere.
type RouteRoles struct {
	Prefix       string
	AllowedRoles []auth.Role
}

func DefaultRouteRoles() []RouteRoles {
	managerial := []auth.Role{auth.RoleAdmin, auth.RoleManager}

	return []RouteRoles{
		{Prefix: "/accounts", AllowedRoles: []auth.Role{auth.RoleAdmin}},
		{Prefix: "/products", AllowedRoles: managerial},
		{Prefix: "/categories", AllowedRoles: managerial},
		{Prefix: "/shipping-fees", AllowedRoles: managerial},
		{Prefix: "/profile"}, // any authenticated staff
	}
}

// AllowedRolesForPath matches the longest gated prefix on path segment
// boundaries. The boolean reports whether any rule matched at all.
func AllowedRolesForPath(routes []RouteRoles, path string) ([]auth.Role, bool) {
	var matched *RouteRoles
	for i, route := range routes {
		if !matchesPrefix(path, route.Prefix) {
			continue
		}
		if matched == nil || len(route.Prefix) > len(matched.Prefix) {
			matched = &routes[i]
		}
	}

	if matched == nil {
		return nil, false
	}
	return matched.AllowedRoles, true
}

func matchesPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

package auth

import (
	"errors"
	"fmt"
)

var ErrUnknownRole = errors.New("unknown role")

// Role is the staff role granted by the upstream commerce API.
// Authorization on the upstream side is authoritative, the gateway
// uses roles only to gate navigation early.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleSale    Role = "Sale"
)

var knownRoles = map[Role]struct{}{
	RoleAdmin:   {},
	RoleManager: {},
	RoleSale:    {},
}

func ParseRole(value string) (Role, error) {
	role := Role(value)
	if _, ok := knownRoles[role]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownRole, value)
	}
	return role, nil
}

func RoleIn(role Role, roles []Role) bool {
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	return false
}

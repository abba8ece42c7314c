package models

import "github.com/google/uuid"

// Role is the closed set of caller roles issued by the auth service.
type Role string

const (
	RoleUser        Role = "regular-user"
	RoleBranchAdmin Role = "branch-admin"
	RoleSuperAdmin  Role = "super-admin"
)

// ParseRole converts a raw role claim into a Role.
// Returns false for anything outside the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleBranchAdmin, RoleSuperAdmin:
		return Role(s), true
	}
	return "", false
}

// Identity is the authenticated caller, as installed by the auth gateway.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

package entity

type UserRole string

const (
	RoleUser  UserRole = "ROLE_USER"
	RoleAdmin UserRole = "ROLE_ADMIN"
	RoleGuest UserRole = "ROLE_GUEST"
)

// AllRoles lists every role seeded at startup.
var AllRoles = []UserRole{RoleUser, RoleAdmin, RoleGuest}

// RoleFromRequest maps a requested role name to a stored role.
// Unknown names fall back to RoleUser.
func RoleFromRequest(name string) UserRole {
	switch name {
	case "admin":
		return RoleAdmin
	case "guest":
		return RoleGuest
	default:
		return RoleUser
	}
}

type Role struct {
	BaseSimple
	Name UserRole `db:"name"`
}

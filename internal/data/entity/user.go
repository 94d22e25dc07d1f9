package entity

type User struct {
	Base
	Username      string `db:"username"`
	FirstName     string `db:"first_name"`
	LastName      string `db:"last_name"`
	Email         string `db:"email"`
	ContactNumber string `db:"contact_number"`
	PasswordHash  string `db:"password"`
	Roles         []Role `db:"-"`
}

// RoleNames returns the names of the user's roles.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = string(r.Name)
	}
	return names
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r.Name == role {
			return true
		}
	}
	return false
}

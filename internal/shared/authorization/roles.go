package authorization

// UserRole is the access tier governing visible tickets and actions.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsCustomer() bool {
	return r == RoleCustomer
}

func (r UserRole) IsStaff() bool {
	return r == RoleStaff
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// CanViewAllTickets reports whether the role sees every ticket rather than
// only its own.
func (r UserRole) CanViewAllTickets() bool {
	return r == RoleStaff || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleCustomer || r == RoleStaff || r == RoleAdmin
}

// ParseUserRole maps a string to a role, defaulting to customer for
// anything unknown.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}

// internal/model/role.go
package model

// Role is a user's permission level within a company. The zero value is the
// "no role" sentinel returned when no binding row exists for a (user, company)
// pair; it must never be treated as a numeric role.
type Role int

const (
	RoleNone       Role = 0
	RoleAdmin      Role = 1
	RoleMember     Role = 2
	RoleRestricted Role = 3
	RoleSuperAdmin Role = 4
)

// ParseRole maps a stored role code to a Role, collapsing anything unknown to
// RoleNone.
func ParseRole(code int) Role {
	switch Role(code) {
	case RoleAdmin, RoleMember, RoleRestricted, RoleSuperAdmin:
		return Role(code)
	default:
		return RoleNone
	}
}

// IsCompanyMember reports whether the role grants ordinary company access
// (admin, member or restricted). Super-admin is a global attribute and is
// checked separately by the gates that accept it.
func (r Role) IsCompanyMember() bool {
	return r == RoleAdmin || r == RoleMember || r == RoleRestricted
}

// IsAssignable reports whether the role may be handed out through an
// invitation. Super-admin is never assignable this way.
func (r Role) IsAssignable() bool {
	return r == RoleAdmin || r == RoleMember || r == RoleRestricted
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	case RoleRestricted:
		return "restricted"
	case RoleSuperAdmin:
		return "super-admin"
	default:
		return "no role"
	}
}

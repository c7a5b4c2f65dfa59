package session

// Role identifies which console a session belongs to. The two roles use
// distinct storage namespaces and distinct login endpoints, collapsing what
// would otherwise be two parallel client implementations into one.
type Role string

const (
	// RoleAdmin is a regular console administrator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin manages administrators and global stats.
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether the role is one of the known console roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// StorageKey returns the namespaced key under which this role's session is
// stored. Keeping the namespaces distinct lets both consoles stay signed in
// from the same process.
func (r Role) StorageKey() string {
	return "console:session:" + string(r)
}

// LoginEndpoint returns the backend login path for the role, relative to the
// API prefix.
func (r Role) LoginEndpoint() string {
	if r == RoleSuperAdmin {
		return "/superadmin/login"
	}
	return "/admin/login"
}

func (r Role) String() string {
	return string(r)
}

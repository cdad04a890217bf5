package models

// CRM roles. SUPER_ADMIN has full control; the other roles are read-only for
// destructive operations (delete, export, user management).
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleManager    = "MANAGER"
	RoleViewer     = "VIEWER"
)

// RootAdminID is the protected seed account. It cannot be removed and its
// password is re-applied from configuration on every directory init.
const RootAdminID = "root-admin"

// CRMUser is an admin panel account. Passwords are stored and compared in
// plaintext to preserve the source system's behavior; do not reuse this
// directory across a real trust boundary.
type CRMUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

// Sanitized returns a copy safe to hand to the admin UI.
func (u CRMUser) Sanitized() CRMUser {
	u.Password = ""
	return u
}

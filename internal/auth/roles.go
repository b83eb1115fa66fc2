package auth

// Staff roles as stored on personnel rows.
const (
	RoleAdmin     = "admin"
	RoleReception = "reception"
	RoleSeller    = "seller"
	RoleAuditor   = "auditor"
)

// roleRedirects maps a role to its landing page after login.
var roleRedirects = map[string]string{
	RoleAdmin:     "/admin",
	RoleReception: "/",
	RoleSeller:    "/sale",
	RoleAuditor:   "/verification",
}

// RedirectFor returns the landing page for a role. Unknown roles are not
// allowed to log in.
func RedirectFor(role string) (string, bool) {
	dest, ok := roleRedirects[role]
	return dest, ok
}

type Capability string

const (
	CapSubmitSale      Capability = "sale:submit"
	CapManageStock     Capability = "stock:manage"
	CapManagePersonnel Capability = "personnel:manage"
	CapViewLogs        Capability = "logs:view"
	CapManageSettings  Capability = "settings:manage"
)

var roleCapabilities = map[string]map[Capability]bool{
	RoleAdmin: {
		CapSubmitSale:      true,
		CapManageStock:     true,
		CapManagePersonnel: true,
		CapViewLogs:        true,
		CapManageSettings:  true,
	},
	RoleSeller: {
		CapSubmitSale: true,
	},
	RoleReception: {
		CapManageStock: true,
	},
	RoleAuditor: {},
}

// Authorize reports whether a role may use a given entry point.
func Authorize(role string, cap Capability) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	return caps[cap]
}

package constants

// Role names (dikelola sistem auth eksternal, dibaca dari klaim JWT)
const (
	RoleUser       = "user"
	RoleParent     = "parent"
	RoleTeacher    = "teacher"
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
	RoleAccountant = "accountant"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	BillingAdminRoles = []string{
		RoleAdmin,
		RoleOwner,
		RoleAccountant,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

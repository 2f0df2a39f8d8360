package constants

// Role strings as stored on users.user_role and inside JWT claims.
const (
	RoleSuperAdmin   = "super_admin"
	RoleHeadmaster   = "headmaster"
	RoleDOS          = "dos" // Director of Studies
	RoleDOD          = "dod" // Director of Discipline
	RoleAdmin        = "admin"
	RoleTeacher      = "teacher"
	RoleAccountant   = "accountant"
	RoleReceptionist = "receptionist"
	RoleLibrarian    = "librarian"
	RoleStudent      = "student"
	RoleParent       = "parent"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	StaffRoles = []string{
		RoleHeadmaster,
		RoleDOS,
		RoleDOD,
		RoleAdmin,
		RoleTeacher,
		RoleAccountant,
		RoleReceptionist,
		RoleLibrarian,
	}

	ManagementRoles = []string{
		RoleHeadmaster,
		RoleDOS,
		RoleDOD,
		RoleAdmin,
	}

	FinanceRoles = []string{
		RoleHeadmaster,
		RoleAdmin,
		RoleAccountant,
	}

	LibraryRoles = []string{
		RoleHeadmaster,
		RoleAdmin,
		RoleLibrarian,
	}

	SelfServiceRoles = []string{
		RoleStudent,
		RoleParent,
	}
)

func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

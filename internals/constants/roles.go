package constants

import "fmt"

// Role yang dikenal aplikasi quiz
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

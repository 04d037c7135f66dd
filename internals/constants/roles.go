package constants

import "fmt"

// Role global & per sekolah
const (
	RoleUser    = "user"
	RoleStaff   = "staff"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// Status sekolah (tenant)
const (
	SchoolStatusTrial     = "trial"
	SchoolStatusActive    = "active"
	SchoolStatusSuspended = "suspended"
)

// Status siswa
const (
	StudentStatusActive      = "active"
	StudentStatusInactive    = "inactive"
	StudentStatusSuspended   = "suspended"
	StudentStatusPreEnrolled = "pre_enrolled"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin sekolah yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStaff,
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}
)

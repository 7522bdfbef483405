package constants

import "fmt"

// Roles
const (
	RoleAdmin      = "admin"
	RoleTutor      = "tutor"
	RoleDriver     = "driver"
	RoleSupervisor = "supervisor"
)

// Statuts de compte utilisateur
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusFired     = "fired"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Seul un admin peut acceder a la fonctionnalite %s."
	ErrOnlyStaffCanAccess  = "❌ Seul le personnel (chauffeur/superviseur) peut acceder a la fonctionnalite %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTutor,
		RoleDriver,
		RoleSupervisor,
	}

	StaffRoles = []string{
		RoleDriver,
		RoleSupervisor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

package entity

import "time"

// Roles de usuario (RBAC).
const (
	RoleAdmin            = "Admin"
	RoleBaseCommander    = "Base Commander"
	RoleLogisticsOfficer = "Logistics Officer"
)

// User representa un usuario del sistema (también actúa como personal asignable).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	BaseID       string // base asignada (obligatoria para Base Commander)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole verifica que el rol sea uno de los conocidos.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleBaseCommander, RoleLogisticsOfficer:
		return true
	}
	return false
}

package entity

import "time"

// Acciones y entidades del log de auditoría.
const (
	AuditActionCreate = "CREATE"

	AuditEntityAsset       = "ASSET"
	AuditEntityBase        = "BASE"
	AuditEntityPurchase    = "PURCHASE"
	AuditEntityTransfer    = "TRANSFER"
	AuditEntityAssignment  = "ASSIGNMENT"
	AuditEntityExpenditure = "EXPENDITURE"
)

// AuditLog registra quién hizo qué sobre qué entidad (texto libre en Details).
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	Entity    string
	EntityID  string
	Details   string
	CreatedAt time.Time
}

package entity

import "time"

// Assignment representa existencias entregadas a personal. Reducen lo disponible
// pero el material sigue físicamente en la base (no restan del saldo de cierre).
// No existe flujo de devolución: una asignación nunca se revierte al stock.
type Assignment struct {
	ID          string
	AssetID     string
	BaseID      string
	PersonnelID string
	Quantity    int64
	Date        time.Time
	AssignedBy  string
	CreatedAt   time.Time
}

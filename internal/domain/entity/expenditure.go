package entity

import "time"

// Expenditure representa existencias consumidas o destruidas: salen de la base de forma permanente.
type Expenditure struct {
	ID          string
	AssetID     string
	BaseID      string
	PersonnelID string
	Quantity    int64
	Date        time.Time
	RecordedBy  string
	CreatedAt   time.Time
}

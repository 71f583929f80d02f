package repository

import "time"

// DateWindow acota una consulta por fecha de ocurrencia del evento.
// From y To son inclusivos (gte/lte). Before es estricto (lt) y se usa
// para el saldo de apertura: eventos estrictamente anteriores al periodo.
type DateWindow struct {
	From   *time.Time
	To     *time.Time
	Before *time.Time
}

// MovementFilter filtros para compras, asignaciones y bajas.
// Campos vacíos no filtran. AssetType filtra por categoría del activo referenciado.
type MovementFilter struct {
	AssetID   string
	BaseID    string
	AssetType string
	Window    DateWindow
	Limit     int
	Offset    int
}

// TransferFilter filtros para traslados. FromBaseID/ToBaseID filtran por lado;
// InvolvingBase empareja origen O destino (visibilidad de Base Commander).
type TransferFilter struct {
	AssetID       string
	FromBaseID    string
	ToBaseID      string
	InvolvingBase string
	AssetType     string
	Window        DateWindow
	Limit         int
	Offset        int
}

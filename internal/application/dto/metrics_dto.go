package dto

// NetMovement desglose del movimiento neto del periodo.
type NetMovement struct {
	Total        int64 `json:"total"`
	Purchases    int64 `json:"purchases"`
	TransfersIn  int64 `json:"transfersIn"`
	TransfersOut int64 `json:"transfersOut"`
}

// MetricsSummary resumen del dashboard para un selector (base?, categoría?, rango).
// Assigned es una cifra informativa independiente: no resta del saldo de cierre.
type MetricsSummary struct {
	OpeningBalance int64       `json:"openingBalance"`
	ClosingBalance int64       `json:"closingBalance"`
	NetMovement    NetMovement `json:"netMovement"`
	Assigned       int64       `json:"assigned"`
	Expended       int64       `json:"expended"`
}

package entity

import "time"

// Purchase representa una compra: existencias que entran a una base desde fuera del sistema.
// Inmutable una vez creada; las correcciones se hacen con eventos compensatorios.
type Purchase struct {
	ID        string
	AssetID   string
	BaseID    string
	Quantity  int64 // entero estrictamente positivo
	Date      time.Time
	CreatedBy string
	CreatedAt time.Time
}

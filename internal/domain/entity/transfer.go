package entity

import "time"

// Transfer representa un traslado de existencias entre dos bases distintas.
// Resta en la base origen y suma en la base destino.
type Transfer struct {
	ID         string
	AssetID    string
	FromBaseID string
	ToBaseID   string // debe diferir de FromBaseID
	Quantity   int64
	Date       time.Time
	CreatedBy  string
	CreatedAt  time.Time
}

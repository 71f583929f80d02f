package entity

import "time"

// Base representa una base militar donde se almacenan activos (dato de referencia estático).
type Base struct {
	ID        string
	Name      string // único
	Location  string
	CreatedAt time.Time
}

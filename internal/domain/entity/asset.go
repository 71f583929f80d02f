package entity

import "time"

// Categorías de activo.
const (
	AssetTypeVehicle    = "Vehicle"
	AssetTypeWeapon     = "Weapon"
	AssetTypeAmmunition = "Ammunition"
	AssetTypeEquipment  = "Equipment"
)

// Asset representa un activo militar. BaseID es la base "hogar" administrativa;
// las existencias reales se derivan siempre del log de movimientos.
type Asset struct {
	ID          string
	Type        string
	Serial      string // único a nivel global
	Description string
	BaseID      string
	CreatedAt   time.Time
}

// ValidAssetType verifica que la categoría sea una de las conocidas.
func ValidAssetType(t string) bool {
	switch t {
	case AssetTypeVehicle, AssetTypeWeapon, AssetTypeAmmunition, AssetTypeEquipment:
		return true
	}
	return false
}

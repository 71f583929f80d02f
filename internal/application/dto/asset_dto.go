package dto

import "time"

// CreateAssetRequest body para POST /api/assets (solo Admin).
type CreateAssetRequest struct {
	Type        string `json:"type"`
	Serial      string `json:"serial"`
	Description string `json:"description"`
	BaseID      string `json:"base_id"`
}

// AssetResponse activo con su base hogar.
type AssetResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Serial      string    `json:"serial"`
	Description string    `json:"description"`
	BaseID      string    `json:"base_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// BalanceResponse existencias derivadas de un activo en una base.
type BalanceResponse struct {
	AssetID   string `json:"asset_id"`
	BaseID    string `json:"base_id"`
	Available int64  `json:"available"`
}

package dto

import "time"

// CreatePurchaseRequest body para POST /api/purchases.
type CreatePurchaseRequest struct {
	AssetID  string `json:"asset_id"`
	BaseID   string `json:"base_id"`
	Quantity int64  `json:"quantity"`
	Date     string `json:"date"` // RFC3339 o YYYY-MM-DD
}

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	AssetID    string `json:"asset_id"`
	FromBaseID string `json:"from_base_id"`
	ToBaseID   string `json:"to_base_id"`
	Quantity   int64  `json:"quantity"`
	Date       string `json:"date"`
}

// CreateAssignmentRequest body para POST /api/assignments.
type CreateAssignmentRequest struct {
	AssetID     string `json:"asset_id"`
	BaseID      string `json:"base_id"`
	PersonnelID string `json:"personnel_id"`
	Quantity    int64  `json:"quantity"`
	Date        string `json:"date"`
}

// CreateExpenditureRequest body para POST /api/expenditures.
type CreateExpenditureRequest struct {
	AssetID     string `json:"asset_id"`
	BaseID      string `json:"base_id"`
	PersonnelID string `json:"personnel_id"`
	Quantity    int64  `json:"quantity"`
	Date        string `json:"date"`
}

// PurchaseResponse compra registrada.
type PurchaseResponse struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"asset_id"`
	BaseID    string    `json:"base_id"`
	Quantity  int64     `json:"quantity"`
	Date      time.Time `json:"date"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TransferResponse traslado registrado.
type TransferResponse struct {
	ID         string    `json:"id"`
	AssetID    string    `json:"asset_id"`
	FromBaseID string    `json:"from_base_id"`
	ToBaseID   string    `json:"to_base_id"`
	Quantity   int64     `json:"quantity"`
	Date       time.Time `json:"date"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// AssignmentResponse asignación registrada.
type AssignmentResponse struct {
	ID          string    `json:"id"`
	AssetID     string    `json:"asset_id"`
	BaseID      string    `json:"base_id"`
	PersonnelID string    `json:"personnel_id"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
	AssignedBy  string    `json:"assigned_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenditureResponse baja registrada.
type ExpenditureResponse struct {
	ID          string    `json:"id"`
	AssetID     string    `json:"asset_id"`
	BaseID      string    `json:"base_id"`
	PersonnelID string    `json:"personnel_id"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
	RecordedBy  string    `json:"recorded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

package dto

import "time"

// CreateBaseRequest body para POST /api/bases (solo Admin).
type CreateBaseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// BaseResponse base militar.
type BaseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

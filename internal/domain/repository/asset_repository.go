package repository

import (
	"context"

	"github.com/armasset/ledger-api/internal/domain/entity"
)

// AssetFilter filtros para listar activos.
type AssetFilter struct {
	BaseID string
	Type   string
}

// AssetRepository define el puerto de persistencia para activos.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	GetBySerial(ctx context.Context, serial string) (*entity.Asset, error)
	List(ctx context.Context, filter AssetFilter) ([]*entity.Asset, error)
}

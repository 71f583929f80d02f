package repository

import (
	"context"

	"github.com/armasset/ledger-api/internal/domain/entity"
)

// BaseRepository define el puerto de persistencia para bases.
type BaseRepository interface {
	Create(ctx context.Context, base *entity.Base) error
	GetByID(ctx context.Context, id string) (*entity.Base, error)
	GetByName(ctx context.Context, name string) (*entity.Base, error)
	List(ctx context.Context) ([]*entity.Base, error)
}

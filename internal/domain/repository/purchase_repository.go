package repository

import (
	"context"

	"github.com/armasset/ledger-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para compras.
// Solo append y lecturas: el log de eventos no se actualiza ni se borra.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.Purchase, error)
	SumQuantity(ctx context.Context, filter MovementFilter) (int64, error)
}

package repository

import (
	"context"

	"github.com/armasset/ledger-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para traslados (append-only).
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	List(ctx context.Context, filter TransferFilter) ([]*entity.Transfer, error)
	SumQuantity(ctx context.Context, filter TransferFilter) (int64, error)
}

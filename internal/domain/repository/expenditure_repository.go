package repository

import (
	"context"

	"github.com/armasset/ledger-api/internal/domain/entity"
)

// ExpenditureRepository define el puerto de persistencia para bajas de material (append-only).
type ExpenditureRepository interface {
	Create(ctx context.Context, expenditure *entity.Expenditure) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.Expenditure, error)
	SumQuantity(ctx context.Context, filter MovementFilter) (int64, error)
}

package repository

import (
	"context"

	"github.com/armasset/ledger-api/internal/domain/entity"
)

// AssignmentRepository define el puerto de persistencia para asignaciones (append-only).
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.Assignment) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.Assignment, error)
	SumQuantity(ctx context.Context, filter MovementFilter) (int64, error)
}

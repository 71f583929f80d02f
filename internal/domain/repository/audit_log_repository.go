package repository

import (
	"context"

	"github.com/armasset/ledger-api/internal/domain/entity"
)

// AuditLogRepository define el puerto de persistencia para el log de auditoría (append-only).
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error)
}

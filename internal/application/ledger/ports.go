package ledger

import (
	"context"

	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// TxRepos repositorios de eventos atados a una misma transacción del almacén.
// También se usa con repositorios atados al pool para el camino de solo lectura.
type TxRepos struct {
	Purchases    repository.PurchaseRepository
	Transfers    repository.TransferRepository
	Assignments  repository.AssignmentRepository
	Expenditures repository.ExpenditureRepository
	Audit        repository.AuditLogRepository
}

// TxRunner ejecuta fn dentro de una transacción y hace Commit o Rollback.
// RunSerialized toma además una barrera serializable acotada al par (activo, base):
// ningún otro evento de consumo para ese par puede comprometerse entre la
// verificación de disponibilidad y el append. La implementación debe devolver
// domain.ErrUnknownOutcome si el Commit se interrumpe sin resultado conocido.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
	RunSerialized(ctx context.Context, assetID, baseID string, fn func(r TxRepos) error) error
}

// Auditor emite registros de auditoría best-effort tras un commit exitoso.
// Su fallo nunca revierte ni hace fallar el evento primario.
type Auditor interface {
	Emit(ctx context.Context, log *entity.AuditLog)
}

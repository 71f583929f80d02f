// Package audit implementa el sumidero de auditoría best-effort: el registro
// se persiste si se puede y, si no, se deja constancia en el log sin afectar
// al evento primario ya comprometido.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
	"github.com/armasset/ledger-api/pkg/logger"
)

var _ ledger.Auditor = (*Sink)(nil)

// Sink persiste registros de auditoría en modo fire-and-forget.
type Sink struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewSink construye el sumidero.
func NewSink(repo repository.AuditLogRepository, log *logger.Logger) *Sink {
	return &Sink{repo: repo, log: log}
}

// Emit completa ID/fecha si faltan y persiste. Un fallo se registra y se descarta.
func (s *Sink) Emit(ctx context.Context, al *entity.AuditLog) {
	if al.ID == "" {
		al.ID = uuid.New().String()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	if err := s.repo.Create(ctx, al); err != nil {
		s.log.Warn().
			Err(err).
			Str("entity", al.Entity).
			Str("entity_id", al.EntityID).
			Str("action", al.Action).
			Msg("registro de auditoría no persistido")
	}
}

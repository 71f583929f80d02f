package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
)

// RecordTransfer ejecuta el traslado en tres fases: validación estructural,
// verificación de disponibilidad en la base origen y commit del evento junto
// con su registro de auditoría como unidad atómica. La verificación y el
// append ocurren dentro de la misma transacción serializada por el par
// (activo, base origen): dos traslados concurrentes del mismo stock no pueden
// pasar ambos la verificación.
func (s *Service) RecordTransfer(ctx context.Context, in TransferInput) (*entity.Transfer, error) {
	// Validación estructural: fallo terminal, no reintentable sin cambiar la entrada.
	if in.AssetID == "" || in.FromBaseID == "" || in.ToBaseID == "" || in.Quantity <= 0 || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.FromBaseID == in.ToBaseID {
		return nil, domain.ErrInvalidInput
	}
	if err := s.requireAsset(ctx, in.AssetID); err != nil {
		return nil, err
	}
	if err := s.requireBase(ctx, in.FromBaseID); err != nil {
		return nil, err
	}
	if err := s.requireBase(ctx, in.ToBaseID); err != nil {
		return nil, err
	}

	transfer := &entity.Transfer{
		ID:         uuid.New().String(),
		AssetID:    in.AssetID,
		FromBaseID: in.FromBaseID,
		ToBaseID:   in.ToBaseID,
		Quantity:   in.Quantity,
		Date:       in.Date,
		CreatedBy:  in.ActorID,
		CreatedAt:  time.Now(),
	}
	err := s.tx.RunSerialized(ctx, in.AssetID, in.FromBaseID, func(r TxRepos) error {
		// Verificación de disponibilidad en la base origen.
		if err := availabilityCheck(ctx, r, in.AssetID, in.FromBaseID, in.Quantity); err != nil {
			return err
		}
		// Evento y auditoría como unidad: ambos quedan o ninguno queda.
		if err := r.Transfers.Create(ctx, transfer); err != nil {
			return err
		}
		return r.Audit.Create(ctx, &entity.AuditLog{
			ID:        uuid.New().String(),
			UserID:    in.ActorID,
			Action:    entity.AuditActionCreate,
			Entity:    entity.AuditEntityTransfer,
			EntityID:  transfer.ID,
			Details:   fmt.Sprintf("Traslado de %d unidades del activo %s de la base %s a la base %s", in.Quantity, in.AssetID, in.FromBaseID, in.ToBaseID),
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, classifyPersistErr(err)
	}
	return transfer, nil
}

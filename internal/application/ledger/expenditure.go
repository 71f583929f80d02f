package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
)

// RecordExpenditure da de baja material consumido o destruido: sale de la base
// de forma permanente y resta tanto de lo disponible como del saldo de cierre.
func (s *Service) RecordExpenditure(ctx context.Context, in ExpenditureInput) (*entity.Expenditure, error) {
	if in.AssetID == "" || in.BaseID == "" || in.PersonnelID == "" || in.Quantity <= 0 || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := s.requireAsset(ctx, in.AssetID); err != nil {
		return nil, err
	}
	if err := s.requireBase(ctx, in.BaseID); err != nil {
		return nil, err
	}

	expenditure := &entity.Expenditure{
		ID:          uuid.New().String(),
		AssetID:     in.AssetID,
		BaseID:      in.BaseID,
		PersonnelID: in.PersonnelID,
		Quantity:    in.Quantity,
		Date:        in.Date,
		RecordedBy:  in.ActorID,
		CreatedAt:   time.Now(),
	}
	err := s.tx.RunSerialized(ctx, in.AssetID, in.BaseID, func(r TxRepos) error {
		if err := availabilityCheck(ctx, r, in.AssetID, in.BaseID, in.Quantity); err != nil {
			return err
		}
		return r.Expenditures.Create(ctx, expenditure)
	})
	if err != nil {
		return nil, classifyPersistErr(err)
	}

	s.auditor.Emit(ctx, &entity.AuditLog{
		UserID:   in.ActorID,
		Action:   entity.AuditActionCreate,
		Entity:   entity.AuditEntityExpenditure,
		EntityID: expenditure.ID,
		Details:  fmt.Sprintf("Baja de %d unidades del activo %s por el personal %s", in.Quantity, in.AssetID, in.PersonnelID),
	})
	return expenditure, nil
}

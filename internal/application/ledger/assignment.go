package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
)

// RecordAssignment entrega material a personal. Reduce lo disponible pero el
// material permanece en la base. No hay devolución: la asimetría es deliberada.
func (s *Service) RecordAssignment(ctx context.Context, in AssignmentInput) (*entity.Assignment, error) {
	if in.AssetID == "" || in.BaseID == "" || in.PersonnelID == "" || in.Quantity <= 0 || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := s.requireAsset(ctx, in.AssetID); err != nil {
		return nil, err
	}
	if err := s.requireBase(ctx, in.BaseID); err != nil {
		return nil, err
	}

	assignment := &entity.Assignment{
		ID:          uuid.New().String(),
		AssetID:     in.AssetID,
		BaseID:      in.BaseID,
		PersonnelID: in.PersonnelID,
		Quantity:    in.Quantity,
		Date:        in.Date,
		AssignedBy:  in.ActorID,
		CreatedAt:   time.Now(),
	}
	err := s.tx.RunSerialized(ctx, in.AssetID, in.BaseID, func(r TxRepos) error {
		if err := availabilityCheck(ctx, r, in.AssetID, in.BaseID, in.Quantity); err != nil {
			return err
		}
		return r.Assignments.Create(ctx, assignment)
	})
	if err != nil {
		return nil, classifyPersistErr(err)
	}

	s.auditor.Emit(ctx, &entity.AuditLog{
		UserID:   in.ActorID,
		Action:   entity.AuditActionCreate,
		Entity:   entity.AuditEntityAssignment,
		EntityID: assignment.ID,
		Details:  fmt.Sprintf("Asignadas %d unidades del activo %s al personal %s", in.Quantity, in.AssetID, in.PersonnelID),
	})
	return assignment, nil
}

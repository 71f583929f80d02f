package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
)

// RecordPurchase registra existencias que entran a una base desde fuera del
// sistema. No consume stock, así que no necesita la barrera por par.
func (s *Service) RecordPurchase(ctx context.Context, in PurchaseInput) (*entity.Purchase, error) {
	if in.AssetID == "" || in.BaseID == "" || in.Quantity <= 0 || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := s.requireAsset(ctx, in.AssetID); err != nil {
		return nil, err
	}
	if err := s.requireBase(ctx, in.BaseID); err != nil {
		return nil, err
	}

	purchase := &entity.Purchase{
		ID:        uuid.New().String(),
		AssetID:   in.AssetID,
		BaseID:    in.BaseID,
		Quantity:  in.Quantity,
		Date:      in.Date,
		CreatedBy: in.ActorID,
		CreatedAt: time.Now(),
	}
	err := s.tx.Run(ctx, func(r TxRepos) error {
		return r.Purchases.Create(ctx, purchase)
	})
	if err != nil {
		return nil, classifyPersistErr(err)
	}

	s.auditor.Emit(ctx, &entity.AuditLog{
		UserID:   in.ActorID,
		Action:   entity.AuditActionCreate,
		Entity:   entity.AuditEntityPurchase,
		EntityID: purchase.ID,
		Details:  fmt.Sprintf("Compra de %d unidades del activo %s en la base %s", in.Quantity, in.AssetID, in.BaseID),
	})
	return purchase, nil
}

package usecase

import (
	"context"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// MovementQueryUseCase expone los listados históricos de los cuatro tipos de
// evento. Solo lecturas: el log nunca se modifica desde aquí.
type MovementQueryUseCase struct {
	repos ledger.TxRepos
}

// NewMovementQueryUseCase crea el caso de uso de consultas de movimientos.
func NewMovementQueryUseCase(repos ledger.TxRepos) *MovementQueryUseCase {
	return &MovementQueryUseCase{repos: repos}
}

// ListPurchases lista compras según el filtro.
func (uc *MovementQueryUseCase) ListPurchases(ctx context.Context, f repository.MovementFilter) ([]dto.PurchaseResponse, error) {
	items, err := uc.repos.Purchases.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.PurchaseResponse{
			ID:        p.ID,
			AssetID:   p.AssetID,
			BaseID:    p.BaseID,
			Quantity:  p.Quantity,
			Date:      p.Date,
			CreatedBy: p.CreatedBy,
			CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}

// ListTransfers lista traslados según el filtro.
func (uc *MovementQueryUseCase) ListTransfers(ctx context.Context, f repository.TransferFilter) ([]dto.TransferResponse, error) {
	items, err := uc.repos.Transfers.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(items))
	for _, t := range items {
		out = append(out, dto.TransferResponse{
			ID:         t.ID,
			AssetID:    t.AssetID,
			FromBaseID: t.FromBaseID,
			ToBaseID:   t.ToBaseID,
			Quantity:   t.Quantity,
			Date:       t.Date,
			CreatedBy:  t.CreatedBy,
			CreatedAt:  t.CreatedAt,
		})
	}
	return out, nil
}

// ListAssignments lista asignaciones según el filtro.
func (uc *MovementQueryUseCase) ListAssignments(ctx context.Context, f repository.MovementFilter) ([]dto.AssignmentResponse, error) {
	items, err := uc.repos.Assignments.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, dto.AssignmentResponse{
			ID:          a.ID,
			AssetID:     a.AssetID,
			BaseID:      a.BaseID,
			PersonnelID: a.PersonnelID,
			Quantity:    a.Quantity,
			Date:        a.Date,
			AssignedBy:  a.AssignedBy,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out, nil
}

// ListExpenditures lista bajas según el filtro.
func (uc *MovementQueryUseCase) ListExpenditures(ctx context.Context, f repository.MovementFilter) ([]dto.ExpenditureResponse, error) {
	items, err := uc.repos.Expenditures.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenditureResponse, 0, len(items))
	for _, e := range items {
		out = append(out, dto.ExpenditureResponse{
			ID:          e.ID,
			AssetID:     e.AssetID,
			BaseID:      e.BaseID,
			PersonnelID: e.PersonnelID,
			Quantity:    e.Quantity,
			Date:        e.Date,
			RecordedBy:  e.RecordedBy,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out, nil
}

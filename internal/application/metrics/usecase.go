// Package metrics compone las salidas del calculador de saldos en resúmenes
// de periodo para el dashboard (apertura, cierre, movimiento neto, asignado, bajas).
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// Selector acota el resumen: base concreta o todas las visibles, categoría de
// activo concreta o todas, y rango de fechas del periodo. La autorización
// (qué bases ve el caller) se aplica antes de llegar aquí.
type Selector struct {
	BaseID    string
	AssetType string
	From      time.Time
	To        time.Time
}

// UseCase genera el resumen de métricas del dashboard.
// Solo lecturas: composición pura sobre las sumas del almacén de eventos.
type UseCase struct {
	purchases    repository.PurchaseRepository
	transfers    repository.TransferRepository
	assignments  repository.AssignmentRepository
	expenditures repository.ExpenditureRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	purchases repository.PurchaseRepository,
	transfers repository.TransferRepository,
	assignments repository.AssignmentRepository,
	expenditures repository.ExpenditureRepository,
) *UseCase {
	return &UseCase{purchases: purchases, transfers: transfers, assignments: assignments, expenditures: expenditures}
}

// GetMetrics construye el resumen del periodo.
//
// Dos consultas compuestas en paralelo:
//  1. acumulados del periodo [From, To] (las cinco sumas)
//  2. acumulados estrictamente anteriores a From (saldo de apertura)
//
// Apertura = compras + entrantes − salientes − bajas antes del periodo; las
// asignaciones no restan (el material sigue en la base). Cierre = apertura +
// movimiento neto − bajas del periodo.
func (uc *UseCase) GetMetrics(ctx context.Context, sel Selector) (*dto.MetricsSummary, error) {
	type totalsResult struct {
		t   ledger.Totals
		err error
	}

	periodWindow := repository.DateWindow{}
	if !sel.From.IsZero() {
		from := sel.From
		periodWindow.From = &from
	}
	if !sel.To.IsZero() {
		to := sel.To
		periodWindow.To = &to
	}

	periodCh := make(chan totalsResult, 1)
	openingCh := make(chan totalsResult, 1)

	go func() {
		t, err := uc.sumTotals(ctx, sel, periodWindow)
		periodCh <- totalsResult{t, err}
	}()
	go func() {
		// Sin inicio de periodo no hay "antes del periodo": apertura 0.
		if sel.From.IsZero() {
			openingCh <- totalsResult{}
			return
		}
		before := sel.From
		t, err := uc.sumTotals(ctx, sel, repository.DateWindow{Before: &before})
		openingCh <- totalsResult{t, err}
	}()

	period := <-periodCh
	opening := <-openingCh

	if period.err != nil {
		return nil, fmt.Errorf("métricas: acumulados del periodo: %w", period.err)
	}
	if opening.err != nil {
		return nil, fmt.Errorf("métricas: saldo de apertura: %w", opening.err)
	}

	openingBalance := opening.t.ClosingBalance(0)
	return &dto.MetricsSummary{
		OpeningBalance: openingBalance,
		ClosingBalance: period.t.ClosingBalance(openingBalance),
		NetMovement: dto.NetMovement{
			Total:        period.t.NetMovement(),
			Purchases:    period.t.Purchases,
			TransfersIn:  period.t.TransfersIn,
			TransfersOut: period.t.TransfersOut,
		},
		Assigned: period.t.Assigned,
		Expended: period.t.Expended,
	}, nil
}

// sumTotals ejecuta las cinco sumas con los filtros del selector.
// Sin filtro de base, entrantes y salientes suman todos los traslados y se
// cancelan en el movimiento neto.
func (uc *UseCase) sumTotals(ctx context.Context, sel Selector, w repository.DateWindow) (ledger.Totals, error) {
	var t ledger.Totals
	var err error

	mf := repository.MovementFilter{BaseID: sel.BaseID, AssetType: sel.AssetType, Window: w}
	if t.Purchases, err = uc.purchases.SumQuantity(ctx, mf); err != nil {
		return ledger.Totals{}, fmt.Errorf("sumar compras: %w", err)
	}
	if t.TransfersIn, err = uc.transfers.SumQuantity(ctx, repository.TransferFilter{ToBaseID: sel.BaseID, AssetType: sel.AssetType, Window: w}); err != nil {
		return ledger.Totals{}, fmt.Errorf("sumar traslados entrantes: %w", err)
	}
	if t.TransfersOut, err = uc.transfers.SumQuantity(ctx, repository.TransferFilter{FromBaseID: sel.BaseID, AssetType: sel.AssetType, Window: w}); err != nil {
		return ledger.Totals{}, fmt.Errorf("sumar traslados salientes: %w", err)
	}
	if t.Assigned, err = uc.assignments.SumQuantity(ctx, mf); err != nil {
		return ledger.Totals{}, fmt.Errorf("sumar asignaciones: %w", err)
	}
	if t.Expended, err = uc.expenditures.SumQuantity(ctx, mf); err != nil {
		return ledger.Totals{}, fmt.Errorf("sumar bajas: %w", err)
	}
	return t, nil
}

package ledger

import (
	"context"
	"fmt"

	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// Totals acumulados por tipo de evento para un par (activo, base) dentro de una ventana.
// El saldo nunca se almacena: siempre es un fold sobre el log de eventos.
type Totals struct {
	Purchases    int64
	TransfersIn  int64
	TransfersOut int64
	Assigned     int64
	Expended     int64
}

// Available es la única fórmula para derivar existencias disponibles:
// compras + traslados entrantes − traslados salientes − asignaciones − bajas.
// Un par sin eventos da 0, no un error.
func (t Totals) Available() int64 {
	return t.Purchases + t.TransfersIn - t.TransfersOut - t.Assigned - t.Expended
}

// NetMovement movimiento neto del periodo: compras + entrantes − salientes.
// Las asignaciones no participan: el material asignado sigue en la base.
func (t Totals) NetMovement() int64 {
	return t.Purchases + t.TransfersIn - t.TransfersOut
}

// ClosingBalance saldo de cierre a partir de un saldo de apertura.
func (t Totals) ClosingBalance(opening int64) int64 {
	return opening + t.NetMovement() - t.Expended
}

// Add combina dos acumulados. La suma es asociativa y conmutativa: el orden de
// inserción de los eventos no afecta el resultado del fold.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Purchases:    t.Purchases + o.Purchases,
		TransfersIn:  t.TransfersIn + o.TransfersIn,
		TransfersOut: t.TransfersOut + o.TransfersOut,
		Assigned:     t.Assigned + o.Assigned,
		Expended:     t.Expended + o.Expended,
	}
}

// totalsFor consulta las cinco sumas para un par (activo, base) en una ventana.
// Con los repositorios atados a una tx observa los eventos de esa misma tx.
func totalsFor(ctx context.Context, r TxRepos, assetID, baseID string, w repository.DateWindow) (Totals, error) {
	var t Totals
	var err error

	mf := repository.MovementFilter{AssetID: assetID, BaseID: baseID, Window: w}
	if t.Purchases, err = r.Purchases.SumQuantity(ctx, mf); err != nil {
		return Totals{}, fmt.Errorf("sumar compras: %w", err)
	}
	if t.TransfersIn, err = r.Transfers.SumQuantity(ctx, repository.TransferFilter{AssetID: assetID, ToBaseID: baseID, Window: w}); err != nil {
		return Totals{}, fmt.Errorf("sumar traslados entrantes: %w", err)
	}
	if t.TransfersOut, err = r.Transfers.SumQuantity(ctx, repository.TransferFilter{AssetID: assetID, FromBaseID: baseID, Window: w}); err != nil {
		return Totals{}, fmt.Errorf("sumar traslados salientes: %w", err)
	}
	if t.Assigned, err = r.Assignments.SumQuantity(ctx, mf); err != nil {
		return Totals{}, fmt.Errorf("sumar asignaciones: %w", err)
	}
	if t.Expended, err = r.Expenditures.SumQuantity(ctx, mf); err != nil {
		return Totals{}, fmt.Errorf("sumar bajas: %w", err)
	}
	return t, nil
}

// GetBalance devuelve las existencias disponibles de un activo en una base,
// acotadas por la ventana de fechas (ventana vacía = toda la historia).
func (s *Service) GetBalance(ctx context.Context, assetID, baseID string, window repository.DateWindow) (int64, error) {
	if assetID == "" || baseID == "" {
		return 0, domain.ErrInvalidInput
	}
	if err := s.requireAsset(ctx, assetID); err != nil {
		return 0, err
	}
	if err := s.requireBase(ctx, baseID); err != nil {
		return 0, err
	}
	totals, err := totalsFor(ctx, s.reads, assetID, baseID, window)
	if err != nil {
		return 0, classifyPersistErr(err)
	}
	return totals.Available(), nil
}

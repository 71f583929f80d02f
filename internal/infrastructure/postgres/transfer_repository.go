package postgres

import (
	"context"
	"fmt"

	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un traslado.
func (r *TransferRepo) Create(ctx context.Context, t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, asset_id, from_base_id, to_base_id, quantity, date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, t.ID, t.AssetID, t.FromBaseID, t.ToBaseID, t.Quantity, t.Date, t.CreatedBy, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

// List lista traslados según filtros, más recientes primero.
func (r *TransferRepo) List(ctx context.Context, f repository.TransferFilter) ([]*entity.Transfer, error) {
	c := transferConds(f)
	query := `
		SELECT id, asset_id, from_base_id, to_base_id, quantity, date, created_by, created_at
		FROM transfers WHERE 1=1` + c.sb.String() + ` ORDER BY date DESC, created_at DESC` + c.page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.AssetID, &t.FromBaseID, &t.ToBaseID, &t.Quantity, &t.Date, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SumQuantity suma cantidades trasladadas según filtros. Sin filas devuelve 0.
func (r *TransferRepo) SumQuantity(ctx context.Context, f repository.TransferFilter) (int64, error) {
	c := transferConds(f)
	query := `SELECT COALESCE(SUM(quantity), 0) FROM transfers WHERE 1=1` + c.sb.String()
	var total int64
	if err := r.q.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum transfers: %w", err)
	}
	return total, nil
}

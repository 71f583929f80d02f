package postgres

import (
	"context"
	"fmt"

	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra. Solo INSERT: el log de eventos no se modifica.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, asset_id, base_id, quantity, date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.AssetID, p.BaseID, p.Quantity, p.Date, p.CreatedBy, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// List lista compras según filtros, más recientes primero (empates por orden de inserción).
func (r *PurchaseRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Purchase, error) {
	c := movementConds(f)
	query := `
		SELECT id, asset_id, base_id, quantity, date, created_by, created_at
		FROM purchases WHERE 1=1` + c.sb.String() + ` ORDER BY date DESC, created_at DESC` + c.page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.AssetID, &p.BaseID, &p.Quantity, &p.Date, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SumQuantity suma cantidades de compra según filtros. Sin filas devuelve 0.
func (r *PurchaseRepo) SumQuantity(ctx context.Context, f repository.MovementFilter) (int64, error) {
	c := movementConds(f)
	query := `SELECT COALESCE(SUM(quantity), 0) FROM purchases WHERE 1=1` + c.sb.String()
	var total int64
	if err := r.q.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum purchases: %w", err)
	}
	return total, nil
}

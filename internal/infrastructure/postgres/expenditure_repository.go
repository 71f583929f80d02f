package postgres

import (
	"context"
	"fmt"

	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

var _ repository.ExpenditureRepository = (*ExpenditureRepo)(nil)

// ExpenditureRepo implementación sobre PostgreSQL (usable con pool o tx).
type ExpenditureRepo struct {
	q Querier
}

// NewExpenditureRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenditureRepository(q Querier) *ExpenditureRepo {
	return &ExpenditureRepo{q: q}
}

// Create persiste una baja de material.
func (r *ExpenditureRepo) Create(ctx context.Context, e *entity.Expenditure) error {
	query := `
		INSERT INTO expenditures (id, asset_id, base_id, personnel_id, quantity, date, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, e.ID, e.AssetID, e.BaseID, e.PersonnelID, e.Quantity, e.Date, e.RecordedBy, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("create expenditure: %w", err)
	}
	return nil
}

// List lista bajas según filtros, más recientes primero.
func (r *ExpenditureRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Expenditure, error) {
	c := movementConds(f)
	query := `
		SELECT id, asset_id, base_id, personnel_id, quantity, date, recorded_by, created_at
		FROM expenditures WHERE 1=1` + c.sb.String() + ` ORDER BY date DESC, created_at DESC` + c.page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list expenditures: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expenditure
	for rows.Next() {
		var e entity.Expenditure
		if err := rows.Scan(&e.ID, &e.AssetID, &e.BaseID, &e.PersonnelID, &e.Quantity, &e.Date, &e.RecordedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expenditure: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumQuantity suma cantidades dadas de baja según filtros. Sin filas devuelve 0.
func (r *ExpenditureRepo) SumQuantity(ctx context.Context, f repository.MovementFilter) (int64, error) {
	c := movementConds(f)
	query := `SELECT COALESCE(SUM(quantity), 0) FROM expenditures WHERE 1=1` + c.sb.String()
	var total int64
	if err := r.q.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum expenditures: %w", err)
	}
	return total, nil
}

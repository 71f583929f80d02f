package postgres

import (
	"context"
	"fmt"

	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación sobre PostgreSQL (usable con pool o tx).
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// Create persiste una asignación.
func (r *AssignmentRepo) Create(ctx context.Context, a *entity.Assignment) error {
	query := `
		INSERT INTO assignments (id, asset_id, base_id, personnel_id, quantity, date, assigned_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, a.ID, a.AssetID, a.BaseID, a.PersonnelID, a.Quantity, a.Date, a.AssignedBy, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// List lista asignaciones según filtros, más recientes primero.
func (r *AssignmentRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Assignment, error) {
	c := movementConds(f)
	query := `
		SELECT id, asset_id, base_id, personnel_id, quantity, date, assigned_by, created_at
		FROM assignments WHERE 1=1` + c.sb.String() + ` ORDER BY date DESC, created_at DESC` + c.page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(&a.ID, &a.AssetID, &a.BaseID, &a.PersonnelID, &a.Quantity, &a.Date, &a.AssignedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// SumQuantity suma cantidades asignadas según filtros. Sin filas devuelve 0.
func (r *AssignmentRepo) SumQuantity(ctx context.Context, f repository.MovementFilter) (int64, error) {
	c := movementConds(f)
	query := `SELECT COALESCE(SUM(quantity), 0) FROM assignments WHERE 1=1` + c.sb.String()
	var total int64
	if err := r.q.QueryRow(ctx, query, c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum assignments: %w", err)
	}
	return total, nil
}

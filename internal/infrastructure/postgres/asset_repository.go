package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador.
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create persiste un activo. Devuelve ErrDuplicate si el serial ya existe.
func (r *AssetRepo) Create(ctx context.Context, a *entity.Asset) error {
	query := `
		INSERT INTO assets (id, type, serial, description, base_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, a.ID, a.Type, a.Serial, a.Description, a.BaseID, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID. Devuelve nil si no existe.
func (r *AssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	return r.getBy(ctx, "id", id)
}

// GetBySerial obtiene un activo por serial. Devuelve nil si no existe.
func (r *AssetRepo) GetBySerial(ctx context.Context, serial string) (*entity.Asset, error) {
	return r.getBy(ctx, "serial", serial)
}

func (r *AssetRepo) getBy(ctx context.Context, column, value string) (*entity.Asset, error) {
	query := `SELECT id, type, serial, description, base_id, created_at FROM assets WHERE ` + column + ` = $1`
	var a entity.Asset
	err := r.q.QueryRow(ctx, query, value).Scan(&a.ID, &a.Type, &a.Serial, &a.Description, &a.BaseID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// List devuelve activos con filtros opcionales de base hogar y categoría.
func (r *AssetRepo) List(ctx context.Context, f repository.AssetFilter) ([]*entity.Asset, error) {
	c := &condBuilder{}
	if f.BaseID != "" {
		c.add("base_id = $%d", f.BaseID)
	}
	if f.Type != "" {
		c.add("type = $%d", f.Type)
	}
	query := `SELECT id, type, serial, description, base_id, created_at FROM assets WHERE 1=1` +
		c.sb.String() + ` ORDER BY serial`

	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(&a.ID, &a.Type, &a.Serial, &a.Description, &a.BaseID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

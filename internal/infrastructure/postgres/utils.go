package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/armasset/ledger-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// condBuilder acumula condiciones SQL posicionales para anexar tras "WHERE 1=1".
type condBuilder struct {
	sb   strings.Builder
	args []any
}

// add anexa una condición; cond debe contener un solo $%d para el placeholder.
func (c *condBuilder) add(cond string, val any) {
	c.args = append(c.args, val)
	c.sb.WriteString(" AND ")
	c.sb.WriteString(fmt.Sprintf(cond, len(c.args)))
}

// window anexa las condiciones de fecha (gte/lte inclusivas, lt estricta).
func (c *condBuilder) window(w repository.DateWindow) {
	if w.From != nil {
		c.add("date >= $%d", *w.From)
	}
	if w.To != nil {
		c.add("date <= $%d", *w.To)
	}
	if w.Before != nil {
		c.add("date < $%d", *w.Before)
	}
}

// page devuelve la cláusula LIMIT/OFFSET si Limit es positivo (registra los args).
func (c *condBuilder) page(limit, offset int) string {
	if limit <= 0 {
		return ""
	}
	c.args = append(c.args, limit)
	clause := fmt.Sprintf(" LIMIT $%d", len(c.args))
	c.args = append(c.args, offset)
	return clause + fmt.Sprintf(" OFFSET $%d", len(c.args))
}

// movementConds condiciones comunes de compras, asignaciones y bajas.
func movementConds(f repository.MovementFilter) *condBuilder {
	c := &condBuilder{}
	if f.AssetID != "" {
		c.add("asset_id = $%d", f.AssetID)
	}
	if f.BaseID != "" {
		c.add("base_id = $%d", f.BaseID)
	}
	if f.AssetType != "" {
		c.add("asset_id IN (SELECT id FROM assets WHERE type = $%d)", f.AssetType)
	}
	c.window(f.Window)
	return c
}

// transferConds condiciones para traslados (lados origen/destino e "involucra").
func transferConds(f repository.TransferFilter) *condBuilder {
	c := &condBuilder{}
	if f.AssetID != "" {
		c.add("asset_id = $%d", f.AssetID)
	}
	if f.FromBaseID != "" {
		c.add("from_base_id = $%d", f.FromBaseID)
	}
	if f.ToBaseID != "" {
		c.add("to_base_id = $%d", f.ToBaseID)
	}
	if f.InvolvingBase != "" {
		// el mismo placeholder sirve para ambos lados
		c.args = append(c.args, f.InvolvingBase)
		n := len(c.args)
		c.sb.WriteString(fmt.Sprintf(" AND (from_base_id = $%d OR to_base_id = $%d)", n, n))
	}
	if f.AssetType != "" {
		c.add("asset_id IN (SELECT id FROM assets WHERE type = $%d)", f.AssetType)
	}
	c.window(f.Window)
	return c
}

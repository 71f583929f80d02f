package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ledger.TxRepos) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(txRepos(tx))
	})
}

// RunSerialized como Run, pero tomando antes un advisory lock transaccional
// derivado del par (activo, base). El log de eventos no tiene fila de saldo
// que bloquear con SELECT FOR UPDATE, así que la barrera verificación+append
// se serializa por par con pg_advisory_xact_lock; el lock se libera solo con
// el Commit o Rollback. Pares distintos no contienden.
func (r *TxRunner) RunSerialized(ctx context.Context, assetID, baseID string, fn func(repos ledger.TxRepos) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1), hashtext($2))`, assetID, baseID); err != nil {
			return fmt.Errorf("advisory lock: %w", err)
		}
		return fn(txRepos(tx))
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrStorage, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		// Commit interrumpido por timeout/cancelación: pudo haber quedado
		// comprometido en el servidor. El caller debe reconsultar, no reintentar a ciegas.
		if ctx.Err() != nil {
			return fmt.Errorf("%w: commit interrumpido: %v", domain.ErrUnknownOutcome, err)
		}
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrStorage, err)
	}
	return nil
}

// txRepos construye los repositorios de eventos atados a la transacción.
func txRepos(tx pgx.Tx) ledger.TxRepos {
	return ledger.TxRepos{
		Purchases:    NewPurchaseRepository(tx),
		Transfers:    NewTransferRepository(tx),
		Assignments:  NewAssignmentRepository(tx),
		Expenditures: NewExpenditureRepository(tx),
		Audit:        NewAuditLogRepository(tx),
	}
}

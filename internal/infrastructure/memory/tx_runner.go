package memory

import (
	"context"
	"fmt"

	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain"
)

// TxRunner ejecuta fn con el mutex del Store tomado de principio a fin.
// Sostener el mutex durante toda la transacción es una barrera más estricta
// que la del almacén SQL (que serializa solo por par activo/base), pero
// cumple el mismo contrato: nada se compromete entre verificación y append.
type TxRunner struct {
	store *Store
}

// NewTxRunner crea el ejecutor de transacciones en memoria.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{store: s}
}

// Run ejecuta fn como transacción: si falla, el estado vuelve al snapshot previo.
func (t *TxRunner) Run(ctx context.Context, fn func(r ledger.TxRepos) error) error {
	return t.run(ctx, fn)
}

// RunSerialized cumple la barrera por par (activo, base); el mutex global ya la implica.
func (t *TxRunner) RunSerialized(ctx context.Context, _, _ string, fn func(r ledger.TxRepos) error) error {
	return t.run(ctx, fn)
}

func (t *TxRunner) run(ctx context.Context, fn func(r ledger.TxRepos) error) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(txRepos(s)); err != nil {
		s.restore(snap)
		return err
	}
	if s.CommitErr != nil {
		s.restore(snap)
		if ctx.Err() != nil {
			return fmt.Errorf("%w: commit: %v", domain.ErrUnknownOutcome, s.CommitErr)
		}
		return fmt.Errorf("%w: commit: %v", domain.ErrStorage, s.CommitErr)
	}
	return nil
}

// txRepos construye repositorios que asumen el mutex ya tomado.
func txRepos(s *Store) ledger.TxRepos {
	return ledger.TxRepos{
		Purchases:    &PurchaseRepo{store: s, inTx: true},
		Transfers:    &TransferRepo{store: s, inTx: true},
		Assignments:  &AssignmentRepo{store: s, inTx: true},
		Expenditures: &ExpenditureRepo{store: s, inTx: true},
		Audit:        &AuditLogRepo{store: s, inTx: true},
	}
}

// Repos construye el juego de repositorios de lectura atados al almacén.
func Repos(s *Store) ledger.TxRepos {
	return ledger.TxRepos{
		Purchases:    NewPurchaseRepository(s),
		Transfers:    NewTransferRepository(s),
		Assignments:  NewAssignmentRepository(s),
		Expenditures: NewExpenditureRepository(s),
		Audit:        NewAuditLogRepository(s),
	}
}

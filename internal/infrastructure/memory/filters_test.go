package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

func date(n int) time.Time {
	return time.Date(2026, time.June, n, 0, 0, 0, 0, time.UTC)
}

// From/To son inclusivos; Before es estricto (se usa para el saldo de apertura).
func TestInWindow_Semantica(t *testing.T) {
	from, to := date(5), date(10)

	assert.True(t, inWindow(date(5), repository.DateWindow{From: &from}), "From es inclusivo")
	assert.False(t, inWindow(date(4), repository.DateWindow{From: &from}))
	assert.True(t, inWindow(date(10), repository.DateWindow{To: &to}), "To es inclusivo")
	assert.False(t, inWindow(date(11), repository.DateWindow{To: &to}))

	before := date(5)
	assert.True(t, inWindow(date(4), repository.DateWindow{Before: &before}))
	assert.False(t, inWindow(date(5), repository.DateWindow{Before: &before}), "Before es estricto")
}

func TestPurchaseRepo_SumaYVentana(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	repo := NewPurchaseRepository(store)

	for n, qty := range map[int]int64{1: 10, 5: 20, 9: 30} {
		require.NoError(t, repo.Create(ctx, &entity.Purchase{
			ID: "p", AssetID: "a", BaseID: "b", Quantity: qty, Date: date(n), CreatedAt: time.Now(),
		}))
	}

	total, err := repo.SumQuantity(ctx, repository.MovementFilter{AssetID: "a", BaseID: "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(60), total)

	before := date(5)
	opening, err := repo.SumQuantity(ctx, repository.MovementFilter{
		AssetID: "a", BaseID: "b", Window: repository.DateWindow{Before: &before},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), opening, "solo lo estrictamente anterior")
}

// Un error de fn revierte todo lo escrito dentro de la transacción.
func TestTxRunner_RollbackTruncaElLog(t *testing.T) {
	store := NewStore()
	runner := NewTxRunner(store)
	ctx := context.Background()

	err := runner.Run(ctx, func(r ledger.TxRepos) error {
		if err := r.Purchases.Create(ctx, &entity.Purchase{ID: "p1", AssetID: "a", BaseID: "b", Quantity: 1, Date: date(1)}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)
	assert.Equal(t, 0, store.CountEvents())

	err = runner.Run(ctx, func(r ledger.TxRepos) error {
		return r.Purchases.Create(ctx, &entity.Purchase{ID: "p2", AssetID: "a", BaseID: "b", Quantity: 1, Date: date(1)})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.CountEvents())
}

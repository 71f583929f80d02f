package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain"
)

// Dos traslados concurrentes compitiendo por la última unidad: la barrera
// serializable garantiza que exactamente uno pasa la verificación.
func TestService_TrasladosConcurrentesNoSobregiran(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: f.assetID, BaseID: f.baseB, Quantity: 1, Date: day(1), ActorID: f.actorID,
	})
	require.NoError(t, err)

	const attempts = 2
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.engine.RecordTransfer(ctx, ledger.TransferInput{
				AssetID: f.assetID, FromBaseID: f.baseB, ToBaseID: f.baseC, Quantity: 1, Date: day(2), ActorID: f.actorID,
			})
		}(i)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		default:
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			rejected++
		}
	}
	assert.Equal(t, 1, ok, "exactamente un traslado debe pasar")
	assert.Equal(t, attempts-1, rejected)

	assert.Equal(t, int64(0), f.balance(t, f.baseB), "el saldo nunca queda negativo")
	assert.Equal(t, int64(1), f.balance(t, f.baseC))
}

// Muchas bajas concurrentes de 1 unidad sobre un stock de N: pasan exactamente N.
func TestService_BajasConcurrentesAgotanSinNegativos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const stock = 5
	_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: f.assetID, BaseID: f.baseB, Quantity: stock, Date: day(1), ActorID: f.actorID,
	})
	require.NoError(t, err)

	const attempts = 12
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.engine.RecordExpenditure(ctx, ledger.ExpenditureInput{
				AssetID: f.assetID, BaseID: f.baseB, PersonnelID: f.actorID, Quantity: 1, Date: day(2), ActorID: f.actorID,
			})
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range results {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, stock, ok)
	assert.Equal(t, int64(0), f.balance(t, f.baseB))
}

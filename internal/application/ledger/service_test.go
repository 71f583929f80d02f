package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
	infraaudit "github.com/armasset/ledger-api/internal/infrastructure/audit"
	"github.com/armasset/ledger-api/internal/infrastructure/memory"
	"github.com/armasset/ledger-api/pkg/logger"
)

// fixture arma un motor completo sobre el almacén en memoria con un activo y dos bases.
type fixture struct {
	store   *memory.Store
	engine  *ledger.Service
	assetID string
	baseB   string
	baseC   string
	actorID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	baseRepo := memory.NewBaseRepository(store)
	assetRepo := memory.NewAssetRepository(store)

	baseB := &entity.Base{ID: uuid.New().String(), Name: "Base Norte", Location: "Norte", CreatedAt: time.Now()}
	baseC := &entity.Base{ID: uuid.New().String(), Name: "Base Sur", Location: "Sur", CreatedAt: time.Now()}
	require.NoError(t, baseRepo.Create(ctx, baseB))
	require.NoError(t, baseRepo.Create(ctx, baseC))

	asset := &entity.Asset{
		ID:        uuid.New().String(),
		Type:      entity.AssetTypeAmmunition,
		Serial:    "AMMO-001",
		BaseID:    baseB.ID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, assetRepo.Create(ctx, asset))

	auditor := infraaudit.NewSink(memory.NewAuditLogRepository(store), logger.Nop())
	engine := ledger.NewService(memory.NewTxRunner(store), memory.Repos(store), assetRepo, baseRepo, auditor)

	return &fixture{
		store:   store,
		engine:  engine,
		assetID: asset.ID,
		baseB:   baseB.ID,
		baseC:   baseC.ID,
		actorID: uuid.New().String(),
	}
}

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) balance(t *testing.T, baseID string) int64 {
	t.Helper()
	available, err := f.engine.GetBalance(context.Background(), f.assetID, baseID, repository.DateWindow{})
	require.NoError(t, err)
	return available
}

// Escenario completo: compra, traslado, baja y una asignación que excede lo disponible.
func TestService_EscenarioLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Compra de 10 en B → disponible 10.
	_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: f.assetID, BaseID: f.baseB, Quantity: 10, Date: day(1), ActorID: f.actorID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), f.balance(t, f.baseB))

	// Traslado de 3 B→C → B queda en 7, C en 3.
	_, err = f.engine.RecordTransfer(ctx, ledger.TransferInput{
		AssetID: f.assetID, FromBaseID: f.baseB, ToBaseID: f.baseC, Quantity: 3, Date: day(2), ActorID: f.actorID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.balance(t, f.baseB))
	assert.Equal(t, int64(3), f.balance(t, f.baseC))

	// Baja de 1 en B → 6.
	_, err = f.engine.RecordExpenditure(ctx, ledger.ExpenditureInput{
		AssetID: f.assetID, BaseID: f.baseB, PersonnelID: f.actorID, Quantity: 1, Date: day(3), ActorID: f.actorID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), f.balance(t, f.baseB))

	// Asignar 8 con 6 disponibles: rechazo con cifras exactas y sin efectos.
	before := f.store.CountEvents()
	_, err = f.engine.RecordAssignment(ctx, ledger.AssignmentInput{
		AssetID: f.assetID, BaseID: f.baseB, PersonnelID: f.actorID, Quantity: 8, Date: day(4), ActorID: f.actorID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(6), insufficient.Available)
	assert.Equal(t, int64(8), insufficient.Requested)

	assert.Equal(t, before, f.store.CountEvents(), "un rechazo no deja rastro en el log")
	assert.Equal(t, int64(6), f.balance(t, f.baseB), "el saldo no cambia tras el rechazo")

	// Asignar 6 exactos sí pasa: disponible queda en 0.
	_, err = f.engine.RecordAssignment(ctx, ledger.AssignmentInput{
		AssetID: f.assetID, BaseID: f.baseB, PersonnelID: f.actorID, Quantity: 6, Date: day(4), ActorID: f.actorID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.balance(t, f.baseB))
}

func TestService_ValidacionEstructural(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		run  func() error
	}{
		{"compra cantidad cero", func() error {
			_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{AssetID: f.assetID, BaseID: f.baseB, Quantity: 0, Date: day(1)})
			return err
		}},
		{"compra cantidad negativa", func() error {
			_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{AssetID: f.assetID, BaseID: f.baseB, Quantity: -5, Date: day(1)})
			return err
		}},
		{"compra sin fecha", func() error {
			_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{AssetID: f.assetID, BaseID: f.baseB, Quantity: 1})
			return err
		}},
		{"traslado a la misma base", func() error {
			_, err := f.engine.RecordTransfer(ctx, ledger.TransferInput{AssetID: f.assetID, FromBaseID: f.baseB, ToBaseID: f.baseB, Quantity: 1, Date: day(1)})
			return err
		}},
		{"asignación sin personal", func() error {
			_, err := f.engine.RecordAssignment(ctx, ledger.AssignmentInput{AssetID: f.assetID, BaseID: f.baseB, Quantity: 1, Date: day(1)})
			return err
		}},
		{"baja sin activo", func() error {
			_, err := f.engine.RecordExpenditure(ctx, ledger.ExpenditureInput{BaseID: f.baseB, PersonnelID: "p", Quantity: 1, Date: day(1)})
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), domain.ErrInvalidInput)
		})
	}
}

func TestService_ReferenciasInexistentes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: uuid.New().String(), BaseID: f.baseB, Quantity: 1, Date: day(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "activo inexistente")

	_, err = f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: f.assetID, BaseID: uuid.New().String(), Quantity: 1, Date: day(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "base inexistente")

	_, err = f.engine.GetBalance(ctx, f.assetID, uuid.New().String(), repository.DateWindow{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un fallo del almacén durante el append se clasifica como ErrStorage (reintentable).
func TestService_FalloDeAlmacenEsErrStorage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.CreateErr = errors.New("conexión perdida")
	_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: f.assetID, BaseID: f.baseB, Quantity: 5, Date: day(1), ActorID: f.actorID,
	})
	assert.ErrorIs(t, err, domain.ErrStorage)

	f.store.CreateErr = nil
	assert.Equal(t, 0, f.store.CountEvents(), "nada quedó comprometido")
}

// Commit interrumpido con el contexto cancelado: resultado desconocido, no reintentar a ciegas.
func TestService_CommitInterrumpidoEsUnknownOutcome(t *testing.T) {
	f := newFixture(t)

	f.store.CommitErr = errors.New("conexión cerrada durante commit")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: f.assetID, BaseID: f.baseB, Quantity: 5, Date: day(1), ActorID: f.actorID,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownOutcome)

	// El mismo fallo de commit sin cancelación es un fallo de almacén normal.
	f2 := newFixture(t)
	f2.store.CommitErr = errors.New("disco lleno")
	_, err = f2.engine.RecordPurchase(context.Background(), ledger.PurchaseInput{
		AssetID: f2.assetID, BaseID: f2.baseB, Quantity: 5, Date: day(1), ActorID: f2.actorID,
	})
	assert.ErrorIs(t, err, domain.ErrStorage)
}

// El evento de traslado y su registro de auditoría son una unidad atómica:
// si la auditoría no puede escribirse, el traslado tampoco queda.
func TestService_TrasladoYAuditoriaAtomicos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: f.assetID, BaseID: f.baseB, Quantity: 10, Date: day(1), ActorID: f.actorID,
	})
	require.NoError(t, err)
	before := f.store.CountEvents()

	f.store.AuditCreateErr = errors.New("tabla de auditoría bloqueada")
	_, err = f.engine.RecordTransfer(ctx, ledger.TransferInput{
		AssetID: f.assetID, FromBaseID: f.baseB, ToBaseID: f.baseC, Quantity: 3, Date: day(2), ActorID: f.actorID,
	})
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, before, f.store.CountEvents(), "el traslado no quedó sin su auditoría")
	assert.Equal(t, int64(10), f.balance(t, f.baseB))
}

// Para los demás eventos la auditoría es best-effort: su fallo no revierte la compra.
func TestService_AuditoriaBestEffortNoFallaLaCompra(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.AuditCreateErr = errors.New("sink caído")
	purchase, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
		AssetID: f.assetID, BaseID: f.baseB, Quantity: 10, Date: day(1), ActorID: f.actorID,
	})
	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.Equal(t, int64(10), f.balance(t, f.baseB))
	assert.Equal(t, 0, f.store.CountAudits(), "el registro de auditoría se descartó sin afectar el evento")
}

// La ventana de fechas del saldo: From/To inclusivos.
func TestService_GetBalanceConVentana(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for n, qty := range map[int]int64{1: 10, 5: 20, 9: 30} {
		_, err := f.engine.RecordPurchase(ctx, ledger.PurchaseInput{
			AssetID: f.assetID, BaseID: f.baseB, Quantity: qty, Date: day(n), ActorID: f.actorID,
		})
		require.NoError(t, err)
	}

	from, to := day(5), day(9)
	available, err := f.engine.GetBalance(ctx, f.assetID, f.baseB, repository.DateWindow{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, int64(50), available, "solo los eventos dentro de [from, to]")
}

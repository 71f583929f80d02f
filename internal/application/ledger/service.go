// Package ledger implementa el motor de inventario: registro de eventos de
// movimiento (compra, traslado, asignación, baja) sobre un log append-only y
// derivación de saldos como fold puro sobre ese log. Ningún saldo se persiste.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// Service orquesta las operaciones del ledger. Las escrituras pasan por el
// TxRunner (verificación y append como unidad serializable); las lecturas usan
// repositorios atados al pool. El motor no hace logging: devuelve errores
// tipados y la capa de servicio los traduce.
type Service struct {
	tx      TxRunner
	reads   TxRepos
	assets  repository.AssetRepository
	bases   repository.BaseRepository
	auditor Auditor
}

// NewService construye el motor del ledger.
func NewService(tx TxRunner, reads TxRepos, assets repository.AssetRepository, bases repository.BaseRepository, auditor Auditor) *Service {
	return &Service{tx: tx, reads: reads, assets: assets, bases: bases, auditor: auditor}
}

// PurchaseInput entrada ya autenticada para registrar una compra.
type PurchaseInput struct {
	AssetID  string
	BaseID   string
	Quantity int64
	Date     time.Time
	ActorID  string
}

// TransferInput entrada para registrar un traslado entre bases.
type TransferInput struct {
	AssetID    string
	FromBaseID string
	ToBaseID   string
	Quantity   int64
	Date       time.Time
	ActorID    string
}

// AssignmentInput entrada para asignar material a personal.
type AssignmentInput struct {
	AssetID     string
	BaseID      string
	PersonnelID string
	Quantity    int64
	Date        time.Time
	ActorID     string
}

// ExpenditureInput entrada para registrar una baja (consumo/destrucción).
type ExpenditureInput struct {
	AssetID     string
	BaseID      string
	PersonnelID string
	Quantity    int64
	Date        time.Time
	ActorID     string
}

// requireAsset verifica que el activo exista.
func (s *Service) requireAsset(ctx context.Context, assetID string) error {
	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return classifyPersistErr(err)
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	return nil
}

// requireBase verifica que la base exista.
func (s *Service) requireBase(ctx context.Context, baseID string) error {
	base, err := s.bases.GetByID(ctx, baseID)
	if err != nil {
		return classifyPersistErr(err)
	}
	if base == nil {
		return domain.ErrNotFound
	}
	return nil
}

// classifyPersistErr deja pasar los errores de dominio tal cual y envuelve
// cualquier fallo de infraestructura como ErrStorage (reintentable: no quedó
// nada parcial comprometido). ErrUnknownOutcome lo marca el TxRunner cuando
// el Commit se interrumpe sin resultado conocido.
func classifyPersistErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrStorage),
		errors.Is(err, domain.ErrUnknownOutcome):
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}

// availabilityCheck recalcula lo disponible con toda la historia (sin cota
// inferior) dentro de la misma transacción y rechaza si lo solicitado excede
// lo disponible. Nunca admite un evento que deje el saldo negativo.
func availabilityCheck(ctx context.Context, r TxRepos, assetID, baseID string, requested int64) error {
	totals, err := totalsFor(ctx, r, assetID, baseID, repository.DateWindow{})
	if err != nil {
		return err
	}
	if available := totals.Available(); requested > available {
		return &domain.InsufficientStockError{Available: available, Requested: requested}
	}
	return nil
}

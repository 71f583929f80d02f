package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// AssetUseCase casos de uso para activos (alta administrativa y lectura; nunca se borran).
type AssetUseCase struct {
	repo     repository.AssetRepository
	baseRepo repository.BaseRepository
	auditor  ledger.Auditor
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, baseRepo repository.BaseRepository, auditor ledger.Auditor) *AssetUseCase {
	return &AssetUseCase{repo: repo, baseRepo: baseRepo, auditor: auditor}
}

// Create crea un activo. El serial es único a nivel global.
func (uc *AssetUseCase) Create(ctx context.Context, actorID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if in.Serial == "" || in.BaseID == "" || !entity.ValidAssetType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	base, err := uc.baseRepo.GetByID(ctx, in.BaseID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetBySerial(ctx, in.Serial)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	asset := &entity.Asset{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Serial:      in.Serial,
		Description: in.Description,
		BaseID:      in.BaseID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	uc.auditor.Emit(ctx, &entity.AuditLog{
		UserID:   actorID,
		Action:   entity.AuditActionCreate,
		Entity:   entity.AuditEntityAsset,
		EntityID: asset.ID,
		Details:  fmt.Sprintf("Creado activo %s con serial %s", asset.Type, asset.Serial),
	})
	return toAssetResponse(asset), nil
}

// GetByID obtiene un activo por ID.
func (uc *AssetUseCase) GetByID(ctx context.Context, id string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	return toAssetResponse(asset), nil
}

// List devuelve activos con filtros opcionales de base y categoría.
func (uc *AssetUseCase) List(ctx context.Context, filter repository.AssetFilter) ([]*dto.AssetResponse, error) {
	assets, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, toAssetResponse(a))
	}
	return out, nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:          a.ID,
		Type:        a.Type,
		Serial:      a.Serial,
		Description: a.Description,
		BaseID:      a.BaseID,
		CreatedAt:   a.CreatedAt,
	}
}

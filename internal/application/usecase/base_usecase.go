package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/armasset/ledger-api/internal/application/dto"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// BaseUseCase casos de uso para bases militares (dato de referencia: solo alta y lectura).
type BaseUseCase struct {
	repo    repository.BaseRepository
	auditor ledger.Auditor
}

// NewBaseUseCase construye el caso de uso.
func NewBaseUseCase(repo repository.BaseRepository, auditor ledger.Auditor) *BaseUseCase {
	return &BaseUseCase{repo: repo, auditor: auditor}
}

// Create crea una base. El nombre es único.
func (uc *BaseUseCase) Create(ctx context.Context, actorID string, in dto.CreateBaseRequest) (*dto.BaseResponse, error) {
	if in.Name == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	base := &entity.Base{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, base); err != nil {
		return nil, err
	}
	uc.auditor.Emit(ctx, &entity.AuditLog{
		UserID:   actorID,
		Action:   entity.AuditActionCreate,
		Entity:   entity.AuditEntityBase,
		EntityID: base.ID,
		Details:  "Creada la base " + base.Name,
	})
	return toBaseResponse(base), nil
}

// GetByID obtiene una base por ID.
func (uc *BaseUseCase) GetByID(ctx context.Context, id string) (*dto.BaseResponse, error) {
	base, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, nil
	}
	return toBaseResponse(base), nil
}

// List devuelve todas las bases.
func (uc *BaseUseCase) List(ctx context.Context) ([]*dto.BaseResponse, error) {
	bases, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BaseResponse, 0, len(bases))
	for _, b := range bases {
		out = append(out, toBaseResponse(b))
	}
	return out, nil
}

func toBaseResponse(b *entity.Base) *dto.BaseResponse {
	return &dto.BaseResponse{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		CreatedAt: b.CreatedAt,
	}
}

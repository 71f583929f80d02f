package memory

import (
	"context"
	"sort"
	"time"

	"github.com/armasset/ledger-api/internal/domain"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// PurchaseRepo implementa repository.PurchaseRepository en memoria.
type PurchaseRepo struct {
	store *Store
	inTx  bool
}

// NewPurchaseRepository crea el repositorio de compras.
func NewPurchaseRepository(s *Store) *PurchaseRepo { return &PurchaseRepo{store: s} }

func (r *PurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	defer r.store.acquire(r.inTx)()
	if r.store.CreateErr != nil {
		return r.store.CreateErr
	}
	cp := *p
	r.store.purchases = append(r.store.purchases, &cp)
	return nil
}

func (r *PurchaseRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Purchase, error) {
	defer r.store.acquire(r.inTx)()
	var out []*entity.Purchase
	for _, p := range r.store.purchases {
		if f.AssetID != "" && p.AssetID != f.AssetID {
			continue
		}
		if f.BaseID != "" && p.BaseID != f.BaseID {
			continue
		}
		if !r.store.assetHasType(p.AssetID, f.AssetType) || !inWindow(p.Date, f.Window) {
			continue
		}
		out = append(out, p)
	}
	sortMovements(out, func(p *entity.Purchase) time.Time { return p.Date }, func(p *entity.Purchase) time.Time { return p.CreatedAt })
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *PurchaseRepo) SumQuantity(ctx context.Context, f repository.MovementFilter) (int64, error) {
	f.Limit, f.Offset = 0, 0
	items, err := r.List(ctx, f)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, p := range items {
		sum += p.Quantity
	}
	return sum, nil
}

// TransferRepo implementa repository.TransferRepository en memoria.
type TransferRepo struct {
	store *Store
	inTx  bool
}

// NewTransferRepository crea el repositorio de traslados.
func NewTransferRepository(s *Store) *TransferRepo { return &TransferRepo{store: s} }

func (r *TransferRepo) Create(_ context.Context, t *entity.Transfer) error {
	defer r.store.acquire(r.inTx)()
	if r.store.CreateErr != nil {
		return r.store.CreateErr
	}
	cp := *t
	r.store.transfers = append(r.store.transfers, &cp)
	return nil
}

func (r *TransferRepo) List(_ context.Context, f repository.TransferFilter) ([]*entity.Transfer, error) {
	defer r.store.acquire(r.inTx)()
	var out []*entity.Transfer
	for _, t := range r.store.transfers {
		if f.AssetID != "" && t.AssetID != f.AssetID {
			continue
		}
		if f.FromBaseID != "" && t.FromBaseID != f.FromBaseID {
			continue
		}
		if f.ToBaseID != "" && t.ToBaseID != f.ToBaseID {
			continue
		}
		if f.InvolvingBase != "" && t.FromBaseID != f.InvolvingBase && t.ToBaseID != f.InvolvingBase {
			continue
		}
		if !r.store.assetHasType(t.AssetID, f.AssetType) || !inWindow(t.Date, f.Window) {
			continue
		}
		out = append(out, t)
	}
	sortMovements(out, func(t *entity.Transfer) time.Time { return t.Date }, func(t *entity.Transfer) time.Time { return t.CreatedAt })
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *TransferRepo) SumQuantity(ctx context.Context, f repository.TransferFilter) (int64, error) {
	f.Limit, f.Offset = 0, 0
	items, err := r.List(ctx, f)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, t := range items {
		sum += t.Quantity
	}
	return sum, nil
}

// AssignmentRepo implementa repository.AssignmentRepository en memoria.
type AssignmentRepo struct {
	store *Store
	inTx  bool
}

// NewAssignmentRepository crea el repositorio de asignaciones.
func NewAssignmentRepository(s *Store) *AssignmentRepo { return &AssignmentRepo{store: s} }

func (r *AssignmentRepo) Create(_ context.Context, a *entity.Assignment) error {
	defer r.store.acquire(r.inTx)()
	if r.store.CreateErr != nil {
		return r.store.CreateErr
	}
	cp := *a
	r.store.assignments = append(r.store.assignments, &cp)
	return nil
}

func (r *AssignmentRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Assignment, error) {
	defer r.store.acquire(r.inTx)()
	var out []*entity.Assignment
	for _, a := range r.store.assignments {
		if f.AssetID != "" && a.AssetID != f.AssetID {
			continue
		}
		if f.BaseID != "" && a.BaseID != f.BaseID {
			continue
		}
		if !r.store.assetHasType(a.AssetID, f.AssetType) || !inWindow(a.Date, f.Window) {
			continue
		}
		out = append(out, a)
	}
	sortMovements(out, func(a *entity.Assignment) time.Time { return a.Date }, func(a *entity.Assignment) time.Time { return a.CreatedAt })
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *AssignmentRepo) SumQuantity(ctx context.Context, f repository.MovementFilter) (int64, error) {
	f.Limit, f.Offset = 0, 0
	items, err := r.List(ctx, f)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, a := range items {
		sum += a.Quantity
	}
	return sum, nil
}

// ExpenditureRepo implementa repository.ExpenditureRepository en memoria.
type ExpenditureRepo struct {
	store *Store
	inTx  bool
}

// NewExpenditureRepository crea el repositorio de bajas.
func NewExpenditureRepository(s *Store) *ExpenditureRepo { return &ExpenditureRepo{store: s} }

func (r *ExpenditureRepo) Create(_ context.Context, e *entity.Expenditure) error {
	defer r.store.acquire(r.inTx)()
	if r.store.CreateErr != nil {
		return r.store.CreateErr
	}
	cp := *e
	r.store.expenditures = append(r.store.expenditures, &cp)
	return nil
}

func (r *ExpenditureRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Expenditure, error) {
	defer r.store.acquire(r.inTx)()
	var out []*entity.Expenditure
	for _, e := range r.store.expenditures {
		if f.AssetID != "" && e.AssetID != f.AssetID {
			continue
		}
		if f.BaseID != "" && e.BaseID != f.BaseID {
			continue
		}
		if !r.store.assetHasType(e.AssetID, f.AssetType) || !inWindow(e.Date, f.Window) {
			continue
		}
		out = append(out, e)
	}
	sortMovements(out, func(e *entity.Expenditure) time.Time { return e.Date }, func(e *entity.Expenditure) time.Time { return e.CreatedAt })
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *ExpenditureRepo) SumQuantity(ctx context.Context, f repository.MovementFilter) (int64, error) {
	f.Limit, f.Offset = 0, 0
	items, err := r.List(ctx, f)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, e := range items {
		sum += e.Quantity
	}
	return sum, nil
}

// AuditLogRepo implementa repository.AuditLogRepository en memoria.
type AuditLogRepo struct {
	store *Store
	inTx  bool
}

// NewAuditLogRepository crea el repositorio del log de auditoría.
func NewAuditLogRepository(s *Store) *AuditLogRepo { return &AuditLogRepo{store: s} }

func (r *AuditLogRepo) Create(_ context.Context, l *entity.AuditLog) error {
	defer r.store.acquire(r.inTx)()
	if r.store.AuditCreateErr != nil {
		return r.store.AuditCreateErr
	}
	cp := *l
	r.store.audits = append(r.store.audits, &cp)
	return nil
}

func (r *AuditLogRepo) List(_ context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	defer r.store.acquire(r.inTx)()
	out := make([]*entity.AuditLog, len(r.store.audits))
	copy(out, r.store.audits)
	sortMovements(out, func(l *entity.AuditLog) time.Time { return l.CreatedAt }, func(l *entity.AuditLog) time.Time { return l.CreatedAt })
	return paginate(out, limit, offset), nil
}

// BaseRepo implementa repository.BaseRepository en memoria.
type BaseRepo struct{ store *Store }

// NewBaseRepository crea el repositorio de bases.
func NewBaseRepository(s *Store) *BaseRepo { return &BaseRepo{store: s} }

func (r *BaseRepo) Create(_ context.Context, b *entity.Base) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, other := range r.store.bases {
		if other.Name == b.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *b
	r.store.bases[b.ID] = &cp
	return nil
}

func (r *BaseRepo) GetByID(_ context.Context, id string) (*entity.Base, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.bases[id], nil
}

func (r *BaseRepo) GetByName(_ context.Context, name string) (*entity.Base, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, b := range r.store.bases {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}

func (r *BaseRepo) List(_ context.Context) ([]*entity.Base, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Base, 0, len(r.store.bases))
	for _, b := range r.store.bases {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AssetRepo implementa repository.AssetRepository en memoria.
type AssetRepo struct{ store *Store }

// NewAssetRepository crea el repositorio de activos.
func NewAssetRepository(s *Store) *AssetRepo { return &AssetRepo{store: s} }

func (r *AssetRepo) Create(_ context.Context, a *entity.Asset) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, other := range r.store.assets {
		if other.Serial == a.Serial {
			return domain.ErrDuplicate
		}
	}
	cp := *a
	r.store.assets[a.ID] = &cp
	return nil
}

func (r *AssetRepo) GetByID(_ context.Context, id string) (*entity.Asset, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.assets[id], nil
}

func (r *AssetRepo) GetBySerial(_ context.Context, serial string) (*entity.Asset, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.assets {
		if a.Serial == serial {
			return a, nil
		}
	}
	return nil, nil
}

func (r *AssetRepo) List(_ context.Context, f repository.AssetFilter) ([]*entity.Asset, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Asset
	for _, a := range r.store.assets {
		if f.BaseID != "" && a.BaseID != f.BaseID {
			continue
		}
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Serial < out[j].Serial })
	return out, nil
}

// UserRepo implementa repository.UserRepository en memoria.
type UserRepo struct{ store *Store }

// NewUserRepository crea el repositorio de usuarios.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{store: s} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, other := range r.store.users {
		if other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.store.users[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.users[id], nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

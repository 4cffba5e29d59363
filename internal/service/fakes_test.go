package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
)

// In-memory repository fakes, one per persistence interface, used the way
// the handlers' production wiring uses the real Postgres implementations.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) grantRole(id string, role domain.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return
	}
	for _, existing := range user.Roles {
		if existing == role {
			return
		}
	}
	user.Roles = append(user.Roles, role)
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memSessionRepo struct {
	mu     sync.Mutex
	active map[string]bool
	err    error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{active: make(map[string]bool)}
}

func (r *memSessionRepo) Activate(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.active[token] = true
	return nil
}

func (r *memSessionRepo) Deactivate(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.active, token)
	return nil
}

func (r *memSessionRepo) IsActive(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	return r.active[token], nil
}

type memMenuRepo struct {
	mu    sync.Mutex
	items []domain.MenuItem
}

func (r *memMenuRepo) List(_ context.Context) ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.MenuItem{}, r.items...), nil
}

func (r *memMenuRepo) GetByID(_ context.Context, id string) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID == id {
			clone := item
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memMenuRepo) Add(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = uuid.NewString()
	r.items = append(r.items, *item)
	return nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (r *memOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = uuid.NewString()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memOrderRepo) ListByDiner(_ context.Context, dinerID string, page, perPage int) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, order := range r.orders {
		if order.DinerID == dinerID {
			out = append(out, order)
		}
	}
	return out, nil
}

type memFranchiseRepo struct {
	mu         sync.Mutex
	franchises map[string]*domain.Franchise
	users      *memUserRepo
}

func newMemFranchiseRepo(users *memUserRepo) *memFranchiseRepo {
	return &memFranchiseRepo{franchises: make(map[string]*domain.Franchise), users: users}
}

func (r *memFranchiseRepo) Create(_ context.Context, franchise *domain.Franchise) error {
	r.mu.Lock()
	franchise.ID = uuid.NewString()
	clone := *franchise
	r.franchises[franchise.ID] = &clone
	r.mu.Unlock()

	// The Postgres implementation grants the franchisee role to each
	// named admin in the same transaction.
	for _, admin := range franchise.Admins {
		r.users.grantRole(admin.ID, domain.RoleFranchisee)
	}
	return nil
}

func (r *memFranchiseRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.franchises[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.franchises, id)
	return nil
}

func (r *memFranchiseRepo) GetByID(_ context.Context, id string) (*domain.Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if franchise, ok := r.franchises[id]; ok {
		clone := *franchise
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memFranchiseRepo) List(_ context.Context) ([]domain.Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Franchise
	for _, franchise := range r.franchises {
		out = append(out, *franchise)
	}
	return out, nil
}

func (r *memFranchiseRepo) ListByAdmin(_ context.Context, userID string) ([]domain.Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Franchise
	for _, franchise := range r.franchises {
		if franchise.IsAdmin(userID) {
			out = append(out, *franchise)
		}
	}
	return out, nil
}

func (r *memFranchiseRepo) CreateStore(_ context.Context, store *domain.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	franchise, ok := r.franchises[store.FranchiseID]
	if !ok {
		return pgx.ErrNoRows
	}
	store.ID = uuid.NewString()
	franchise.Stores = append(franchise.Stores, *store)
	return nil
}

func (r *memFranchiseRepo) DeleteStore(_ context.Context, franchiseID, storeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	franchise, ok := r.franchises[franchiseID]
	if !ok {
		return pgx.ErrNoRows
	}
	for i, store := range franchise.Stores {
		if store.ID == storeID {
			franchise.Stores = append(franchise.Stores[:i], franchise.Stores[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

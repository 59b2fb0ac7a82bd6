package memstore

import (
	"context"
	"sort"

	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
)

var (
	_ repository.UserRepository          = UserRepo{}
	_ repository.ProductRepository       = ProductRepo{}
	_ repository.EstablishmentRepository = EstablishmentRepo{}
)

// Users adaptador UserRepository sobre el store.
func (s *Store) Users() UserRepo { return UserRepo{s} }

// Products adaptador ProductRepository sobre el store.
func (s *Store) Products() ProductRepo { return ProductRepo{s} }

// Establishments adaptador EstablishmentRepository sobre el store.
func (s *Store) Establishments() EstablishmentRepo { return EstablishmentRepo{s} }

// ── Usuarios ────────────────────────────────────────────────────────────────

// UserRepo implementa repository.UserRepository.
type UserRepo struct{ s *Store }

func (r UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = r.s.next("usuario")
	r.s.users[u.ID] = *u
	return nil
}

func (r UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.users[u.ID]
	if err := errNotFoundIfMissing(ok); err != nil {
		return err
	}
	for id, other := range r.s.users {
		if id != u.ID && other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	updated := *u
	updated.PasswordHash = current.PasswordHash
	r.s.users[u.ID] = updated
	return nil
}

func (r UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	for _, o := range r.s.orders {
		if o.UserID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.users, id)
	return nil
}

// ── Productos ───────────────────────────────────────────────────────────────

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct{ s *Store }

func (r ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.next("producto")
	r.s.products[p.ID] = *p
	return nil
}

func (r ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, it := range r.s.items {
		if it.ProductID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.products, id)
	return nil
}

// ── Sedes ───────────────────────────────────────────────────────────────────

// EstablishmentRepo implementa repository.EstablishmentRepository.
type EstablishmentRepo struct{ s *Store }

func (r EstablishmentRepo) Create(_ context.Context, e *entity.Establishment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = r.s.next("establecimiento")
	r.s.establishment[e.ID] = *e
	return nil
}

func (r EstablishmentRepo) GetByID(_ context.Context, id int64) (*entity.Establishment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.establishment[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r EstablishmentRepo) List(_ context.Context) ([]*entity.Establishment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Establishment, 0, len(r.s.establishment))
	for _, e := range r.s.establishment {
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r EstablishmentRepo) Update(_ context.Context, e *entity.Establishment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.establishment[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.establishment[e.ID] = *e
	return nil
}

func (r EstablishmentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.establishment[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.establishment, id)
	return nil
}

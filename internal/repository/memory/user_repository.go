package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"user-directory/internal/domain"
	"user-directory/internal/repository"
)

// UserRepository keeps all records in process memory behind a single lock.
// It is the authoritative store for the lifetime of the process.
type UserRepository struct {
	mu     sync.RWMutex
	users  []domain.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) Seed(ctx context.Context, users []domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range users {
		r.users = append(r.users, u.Clone())
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByEmail(user.Email, 0) >= 0 {
		return 0, repository.ErrDuplicateEmail
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = nil

	r.users = append(r.users, user.Clone())
	return user.ID, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByID(user.ID)
	if idx < 0 {
		return repository.ErrNotFound
	}
	if r.indexByEmail(user.Email, user.ID) >= 0 {
		return repository.ErrDuplicateEmail
	}

	now := time.Now().UTC()
	stored := &r.users[idx]
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Email = user.Email
	stored.PhoneNumber = user.PhoneNumber
	stored.UpdatedAt = &now

	*user = stored.Clone()
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByID(id)
	if idx < 0 {
		return repository.ErrNotFound
	}
	r.users = append(r.users[:idx], r.users[idx+1:]...)
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexByID(id)
	if idx < 0 {
		return nil, repository.ErrNotFound
	}
	u := r.users[idx].Clone()
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	for i := range r.users {
		out[i] = r.users[i].Clone()
	}
	return out, nil
}

// indexByID and indexByEmail assume the caller holds the lock.
func (r *UserRepository) indexByID(id int64) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

// indexByEmail reports the position of a record holding email, ignoring the
// record with excludeID so updates do not collide with themselves.
func (r *UserRepository) indexByEmail(email string, excludeID int64) int {
	for i := range r.users {
		if r.users[i].ID != excludeID && strings.EqualFold(r.users[i].Email, email) {
			return i
		}
	}
	return -1
}

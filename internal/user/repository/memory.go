package repository

import (
	"context"
	"sync"

	"github.com/idyllic-labs/idyllic-api/internal/observability/metrics"
	"github.com/idyllic-labs/idyllic-api/internal/user/domain"
)

// MemoryRepository holds user records for the lifetime of the process.
// IDs start at 1 and are never reused; the counter resets only when a new
// repository is constructed.
type MemoryRepository struct {
	mu     sync.Mutex
	users  map[int]domain.User
	order  []int
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:  make(map[int]domain.User),
		nextID: 1,
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id int) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *MemoryRepository) Create(_ context.Context, name, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := domain.User{
		ID:    r.nextID,
		Name:  name,
		Email: email,
	}
	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	r.nextID++

	// UsersTotal is process-global; it tracks the store size exactly only
	// while the process hosts a single repository, as cmd/api does. Extra
	// instances (as in tests) overwrite each other's samples.
	metrics.UsersCreatedTotal.Inc()
	metrics.UsersTotal.Set(float64(len(r.users)))

	return user, nil
}

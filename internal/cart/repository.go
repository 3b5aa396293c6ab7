package cart

import (
	"context"
	"sync"
)

// Repository stores one cart per session.
type Repository interface {
	Get(ctx context.Context, sessionID string) ([]Item, error)
	Save(ctx context.Context, sessionID string, items []Item) error
	Clear(ctx context.Context, sessionID string) error
}

// InMemoryRepository is the default store; carts vanish on restart.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]Item)}
}

func (r *InMemoryRepository) Get(_ context.Context, sessionID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.carts[sessionID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) Save(_ context.Context, sessionID string, items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]Item, len(items))
	copy(stored, items)
	r.carts[sessionID] = stored
	return nil
}

func (r *InMemoryRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

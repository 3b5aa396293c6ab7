package product

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository is a read-only view of the catalog seeded at boot.
type Repository interface {
	List() []Product
	GetByID(id string) (Product, error)
}

// InMemoryRepository keeps the catalog in seed order.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
	}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

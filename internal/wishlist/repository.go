package wishlist

import (
	"sync"
)

// Repository holds a product id set per session.
type Repository interface {
	// Toggle flips membership of productID and reports whether it is now present.
	Toggle(sessionID, productID string) bool
	Remove(sessionID, productID string)
	Clear(sessionID string)
	IDs(sessionID string) []string
}

type InMemoryRepository struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sets: make(map[string]map[string]struct{})}
}

func (r *InMemoryRepository) Toggle(sessionID, productID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[sessionID]
	if !ok {
		set = make(map[string]struct{})
		r.sets[sessionID] = set
	}
	if _, present := set[productID]; present {
		delete(set, productID)
		return false
	}
	set[productID] = struct{}{}
	return true
}

func (r *InMemoryRepository) Remove(sessionID, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.sets[sessionID]; ok {
		delete(set, productID)
	}
}

func (r *InMemoryRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets, sessionID)
}

func (r *InMemoryRepository) IDs(sessionID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.sets[sessionID]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

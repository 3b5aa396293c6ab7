package order

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var (
	ErrNotFound         = errors.New("order not found")
	ErrEmptyReason      = errors.New("refund reason is required")
	ErrRefundNotAllowed = errors.New("refund already requested for this order")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrNoRefundRequest  = errors.New("order has no pending refund request")

	// ErrRefundStateChanged is returned by TransitionRefund when the order's
	// refund status is no longer the expected one.
	ErrRefundStateChanged = errors.New("refund status changed")
)

// Repository defines persistence operations for customer orders.
type Repository interface {
	// Create stores ord ahead of every existing order.
	Create(ctx context.Context, ord Order) (Order, error)
	// List returns every order, most recent first.
	List(ctx context.Context) ([]Order, error)
	// ListByEmail returns the customer's orders, most recent first. An empty
	// statuses list means every status.
	ListByEmail(ctx context.Context, email string, statuses ...Status) ([]Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	Update(ctx context.Context, ord Order) (Order, error)
	// TransitionRefund moves the refund status from `from` to `to` in one step.
	// A non-empty reason replaces the stored one.
	TransitionRefund(ctx context.Context, id string, from, to RefundStatus, reason string) (Order, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

// NewInMemoryRepository keeps seed in the given order, which is taken as
// most recent first.
func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{orders: make([]Order, 0, len(seed))}
	r.orders = append(r.orders, seed...)
	return r
}

func (r *InMemoryRepository) Create(_ context.Context, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]Order{ord}, r.orders...)
	return ord, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.orders), nil
}

func (r *InMemoryRepository) ListByEmail(_ context.Context, email string, statuses ...Status) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, o := range r.orders {
		if o.CustomerEmail != email {
			continue
		}
		if len(statuses) > 0 && !slices.Contains(statuses, o.Status) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Update(_ context.Context, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == ord.ID {
			r.orders[i] = ord
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) TransitionRefund(_ context.Context, id string, from, to RefundStatus, reason string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID != id {
			continue
		}
		if o.RefundStatus != from {
			return Order{}, ErrRefundStateChanged
		}
		o.RefundStatus = to
		if reason != "" {
			o.RefundReason = reason
		}
		r.orders[i] = o
		return o, nil
	}
	return Order{}, ErrNotFound
}

package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service provides business logic for customer orders.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(r Repository) *Service {
	return &Service{repo: r, now: time.Now}
}

// Place stores a freshly checked-out order as Processing with no refund.
func (s *Service) Place(ctx context.Context, ord Order) (Order, error) {
	ord.ID = uuid.NewString()
	ord.Status = StatusProcessing
	ord.RefundStatus = RefundNone
	ord.RefundReason = ""
	if ord.Date == "" {
		ord.Date = s.now().Format(DateLayout)
	}
	return s.repo.Create(ctx, ord)
}

func (s *Service) ListForCustomer(ctx context.Context, email, tab string) ([]Order, error) {
	return s.repo.ListByEmail(ctx, email, TabStatuses(tab)...)
}

// Get returns the order only if it belongs to email.
func (s *Service) Get(ctx context.Context, email, id string) (Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if o.CustomerEmail != email {
		return Order{}, ErrNotFound
	}
	return o, nil
}

// RequestRefund moves an order from RefundNone to RefundRequested. It can
// happen once per order.
func (s *Service) RequestRefund(ctx context.Context, email, id, reason string) (Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Order{}, ErrEmptyReason
	}

	if _, err := s.Get(ctx, email, id); err != nil {
		return Order{}, err
	}
	o, err := s.repo.TransitionRefund(ctx, id, RefundNone, RefundRequested, reason)
	if errors.Is(err, ErrRefundStateChanged) {
		return Order{}, ErrRefundNotAllowed
	}
	return o, err
}

// All lists every order in the store regardless of customer.
func (s *Service) All(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// RefundRequests lists the orders whose refund is awaiting a decision.
func (s *Service) RefundRequests(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Order, 0)
	for _, o := range orders {
		if o.RefundStatus == RefundRequested {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Order, error) {
	if !status.Valid() {
		return Order{}, ErrInvalidStatus
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	o.Status = status
	return s.repo.Update(ctx, o)
}

// ResolveRefund approves or denies a requested refund.
func (s *Service) ResolveRefund(ctx context.Context, id string, approve bool) (Order, error) {
	to := RefundDenied
	if approve {
		to = RefundApproved
	}
	o, err := s.repo.TransitionRefund(ctx, id, RefundRequested, to, "")
	if errors.Is(err, ErrRefundStateChanged) {
		return Order{}, ErrNoRefundRequest
	}
	return o, err
}

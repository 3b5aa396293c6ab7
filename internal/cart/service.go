package cart

import (
	"context"
	"errors"

	"github.com/wichananm65/stylesphere-storefront/internal/product"
)

var ErrOutOfStock = errors.New("product is out of stock")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add puts one unit of p in the cart, merging with an existing line.
// Out-of-stock products leave the cart untouched.
func (s *Service) Add(ctx context.Context, sessionID string, p product.Product) (Summary, error) {
	if p.OutOfStock() {
		return Summary{}, ErrOutOfStock
	}

	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	merged := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, Item{Product: p, Quantity: 1})
	}

	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

// UpdateQuantity sets the line quantity, floored at 1. Unknown ids are ignored.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Summary, error) {
	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = max(1, quantity)
			found = true
			break
		}
	}
	if !found {
		return Summarize(items), nil
	}

	if err := s.repo.Save(ctx, sessionID, items); err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

func (s *Service) Remove(ctx context.Context, sessionID, productID string) (Summary, error) {
	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}

	if err := s.repo.Save(ctx, sessionID, kept); err != nil {
		return Summary{}, err
	}
	return Summarize(kept), nil
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}

func (s *Service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

package wishlist

import (
	"slices"

	"github.com/wichananm65/stylesphere-storefront/internal/product"
)

// Catalog is the part of the product service the wishlist reads.
type Catalog interface {
	List(category string) []product.Product
}

type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) Toggle(sessionID, productID string) (added bool) {
	return s.repo.Toggle(sessionID, productID)
}

func (s *Service) Remove(sessionID, productID string) {
	s.repo.Remove(sessionID, productID)
}

func (s *Service) Clear(sessionID string) {
	s.repo.Clear(sessionID)
}

// IDs returns the wishlisted ids sorted for stable output.
func (s *Service) IDs(sessionID string) []string {
	ids := s.repo.IDs(sessionID)
	slices.Sort(ids)
	return ids
}

// Items returns the wishlisted products in catalog order.
func (s *Service) Items(sessionID string) []product.Product {
	ids := s.repo.IDs(sessionID)
	out := make([]product.Product, 0, len(ids))
	for _, p := range s.catalog.List(product.CategoryAll) {
		if slices.Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out
}

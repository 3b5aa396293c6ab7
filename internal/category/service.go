package category

import "github.com/wichananm65/stylesphere-storefront/internal/product"

// Catalog is the part of the product service categories are read from.
type Catalog interface {
	Categories() []string
	List(category string) []product.Product
}

// Service provides business logic for categories.
type Service struct {
	catalog Catalog
}

func NewService(c Catalog) *Service {
	return &Service{catalog: c}
}

// List returns up to limit categories, "All" first, each with its product count.
func (s *Service) List(limit int) []Item {
	names := s.catalog.Categories()
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	items := make([]Item, 0, len(names))
	for _, name := range names {
		items = append(items, Item{Name: name, ProductCount: len(s.catalog.List(name))})
	}
	return items
}

package recommended

import (
	"fmt"

	"github.com/wichananm65/stylesphere-storefront/internal/product"
)

// DefaultLimit is how many products the strip shows.
const DefaultLimit = 6

// Catalog is the part of the product service recommendations come from.
type Catalog interface {
	Featured(limit, offset int) []product.Product
}

// Service provides business logic for recommended items.
type Service struct {
	catalog Catalog
}

func NewService(c Catalog) *Service {
	return &Service{catalog: c}
}

// For returns up to limit picks for the named shopper, starting at offset.
func (s *Service) For(name string, limit, offset int) Section {
	return Section{
		Title:    fmt.Sprintf("Personalized for You, %s", name),
		Products: product.NewListings(s.catalog.Featured(limit, offset)),
	}
}

package banner

import (
	"fmt"

	"github.com/wichananm65/stylesphere-storefront/internal/product"
)

// Catalog is the part of the product service the banner reads.
type Catalog interface {
	List(category string) []product.Product
}

// Service provides business logic for banners.
type Service struct {
	catalog Catalog
}

func NewService(c Catalog) *Service {
	return &Service{catalog: c}
}

// Get builds the hero from the first catalog product and the stats row
// from the catalog size.
func (s *Service) Get() Banner {
	products := s.catalog.List(product.CategoryAll)
	b := Banner{
		Hero: Hero{
			Eyebrow:      "PREMIUM COLLECTION",
			Title:        "Elegance Redefined",
			Subtitle:     "Discover luxury African fashion that celebrates heritage and contemporary style",
			CallToAction: "Explore Collection",
		},
		Stats: []Stat{
			{Value: fmt.Sprintf("%d+", len(products)), Label: "Premium Products"},
			{Value: "7K+", Label: "Happy Customers"},
			{Value: "99.95%", Label: "Uptime SLA"},
			{Value: "100K+", Label: "Concurrent Users"},
		},
	}
	if len(products) > 0 {
		b.Hero.Image = products[0].Image
	}
	return b
}

package product

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Filters are the advanced search criteria. Zero values disable a criterion
// except InStock, which DefaultFilters turns on.
type Filters struct {
	Query           string          `json:"query"`
	Category        string          `json:"category,omitempty"`
	MinPrice        decimal.Decimal `json:"minPrice"`
	MaxPrice        decimal.Decimal `json:"maxPrice"`
	MinRating       float64         `json:"rating"`
	Sizes           []string        `json:"sizes"`
	Colors          []string        `json:"colors"`
	SustainableOnly bool            `json:"sustainability"`
	InStock         bool            `json:"inStock"`
}

// DefaultFilters mirrors the search sidebar's reset state.
func DefaultFilters() Filters {
	return Filters{
		MinPrice: decimal.Zero,
		MaxPrice: decimal.NewFromInt(1000),
		InStock:  true,
	}
}

// Matches reports whether p satisfies every enabled criterion.
func (f Filters) Matches(p Product) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			return false
		}
	}
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	price := p.DiscountedPrice()
	if price.LessThan(f.MinPrice) {
		return false
	}
	if f.MaxPrice.IsPositive() && price.GreaterThan(f.MaxPrice) {
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	if len(f.Sizes) > 0 && !overlaps(p.Sizes, f.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !overlaps(p.Colors, f.Colors) {
		return false
	}
	if f.SustainableOnly && !p.Sustainable {
		return false
	}
	if f.InStock && p.OutOfStock() {
		return false
	}
	return true
}

func overlaps(have, want []string) bool {
	for _, w := range want {
		if slices.ContainsFunc(have, func(h string) bool { return strings.EqualFold(h, w) }) {
			return true
		}
	}
	return false
}

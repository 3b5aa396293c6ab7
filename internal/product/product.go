package product

import "github.com/shopspring/decimal"

// CategoryAll selects every product when used as a category filter.
const CategoryAll = "All"

// LowStockThreshold is the stock level under which a product shows "only N left".
const LowStockThreshold = 10

// Product is an immutable catalog entry.
type Product struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Price              decimal.Decimal `json:"price"`
	Image              string          `json:"image"`
	Category           string          `json:"category"`
	StockQuantity      int             `json:"stockQuantity"`
	DiscountPercentage int             `json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Sizes              []string        `json:"sizes,omitempty"`
	Colors             []string        `json:"colors,omitempty"`
	Sustainable        bool            `json:"sustainable"`
}

func (p Product) OutOfStock() bool {
	return p.StockQuantity == 0
}

func (p Product) LowStock() bool {
	return p.StockQuantity > 0 && p.StockQuantity < LowStockThreshold
}

// DiscountedPrice applies DiscountPercentage to Price.
func (p Product) DiscountedPrice() decimal.Decimal {
	if p.DiscountPercentage <= 0 {
		return p.Price
	}
	factor := decimal.NewFromInt(100 - int64(p.DiscountPercentage)).Div(decimal.NewFromInt(100))
	return p.Price.Mul(factor).Round(2)
}

// Listing is the shape returned by catalog endpoints.
type Listing struct {
	Product
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	LowStock        bool            `json:"lowStock"`
	OutOfStock      bool            `json:"outOfStock"`
}

func NewListing(p Product) Listing {
	return Listing{
		Product:         p,
		DiscountedPrice: p.DiscountedPrice(),
		LowStock:        p.LowStock(),
		OutOfStock:      p.OutOfStock(),
	}
}

func NewListings(products []Product) []Listing {
	out := make([]Listing, 0, len(products))
	for _, p := range products {
		out = append(out, NewListing(p))
	}
	return out
}

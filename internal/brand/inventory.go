package brand

import (
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
)

var Warehouses = []string{"Lagos Warehouse", "Accra Warehouse", "Nairobi Warehouse", "Johannesburg Warehouse"}

const lowStockBelow = 10

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Warehouse   string          `json:"warehouse"`
	MinOrder    int             `json:"minOrder"`
	Discount    int             `json:"discount"`
	Sustainable bool            `json:"sustainability"`
}

// ProductPatch is a partial edit; nil fields keep their value.
type ProductPatch struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Warehouse   *string          `json:"warehouse"`
	MinOrder    *int             `json:"minOrder"`
	Discount    *int             `json:"discount"`
	Sustainable *bool            `json:"sustainability"`
}

func validateProductPatch(p ProductPatch) map[string]string {
	errs := map[string]string{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs["name"] = "name cannot be empty"
	}
	if p.Price != nil && p.Price.IsNegative() {
		errs["price"] = "price must be >= 0"
	}
	if p.Stock != nil && *p.Stock < 0 {
		errs["stock"] = "stock must be >= 0"
	}
	if p.Warehouse != nil && !slices.Contains(Warehouses, *p.Warehouse) {
		errs["warehouse"] = "unknown warehouse"
	}
	if p.MinOrder != nil && *p.MinOrder < 1 {
		errs["minOrder"] = "minOrder must be >= 1"
	}
	if p.Discount != nil && (*p.Discount < 0 || *p.Discount > 100) {
		errs["discount"] = "discount must be between 0 and 100"
	}
	return errs
}

func (p ProductPatch) apply(prod Product) Product {
	if p.Name != nil {
		prod.Name = strings.TrimSpace(*p.Name)
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.Warehouse != nil {
		prod.Warehouse = *p.Warehouse
	}
	if p.MinOrder != nil {
		prod.MinOrder = *p.MinOrder
	}
	if p.Discount != nil {
		prod.Discount = *p.Discount
	}
	if p.Sustainable != nil {
		prod.Sustainable = *p.Sustainable
	}
	return prod
}

// StockSummary is the header of the inventory page.
type StockSummary struct {
	TotalValue decimal.Decimal `json:"totalValue"`
	LowStock   int             `json:"lowStock"`
}

// Summarize totals price × stock over products and counts those under ten units.
func Summarize(products []Product) StockSummary {
	s := StockSummary{TotalValue: decimal.Zero}
	for _, p := range products {
		s.TotalValue = s.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Stock < lowStockBelow {
			s.LowStock++
		}
	}
	s.TotalValue = s.TotalValue.Round(2)
	return s
}

func SeedProducts() []Product {
	return []Product{
		{ID: "1", Name: "Royal Elegance Dress", Price: decimal.RequireFromString("249.99"), Stock: 15, Warehouse: "Lagos Warehouse", MinOrder: 1, Sustainable: true},
		{ID: "2", Name: "Heritage Print Collection", Price: decimal.RequireFromString("189.99"), Stock: 8, Warehouse: "Accra Warehouse", MinOrder: 2, Discount: 15, Sustainable: true},
	}
}

// Inventory keeps each partner's product list, seeded on first access.
type Inventory struct {
	mu       sync.Mutex
	seed     []Product
	products map[string][]Product
}

func NewInventory(seed []Product) *Inventory {
	return &Inventory{seed: seed, products: make(map[string][]Product)}
}

func (inv *Inventory) listFor(u user.User) []Product {
	key := strings.ToLower(u.Email)
	list, ok := inv.products[key]
	if !ok {
		list = slices.Clone(inv.seed)
		inv.products[key] = list
	}
	return list
}

func (inv *Inventory) List(u user.User) []Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return slices.Clone(inv.listFor(u))
}

func (inv *Inventory) Summary(u user.User) StockSummary {
	return Summarize(inv.List(u))
}

func (inv *Inventory) Update(u user.User, id string, p ProductPatch) (Product, error) {
	if errs := validateProductPatch(p); len(errs) > 0 {
		return Product{}, &ValidationError{Fields: errs}
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	list := inv.listFor(u)
	for i, prod := range list {
		if prod.ID == id {
			list[i] = p.apply(prod)
			return list[i], nil
		}
	}
	return Product{}, ErrProductNotFound
}

func (inv *Inventory) Delete(u user.User, id string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	key := strings.ToLower(u.Email)
	list := inv.listFor(u)
	for i, prod := range list {
		if prod.ID == id {
			inv.products[key] = slices.Delete(list, i, i+1)
			return nil
		}
	}
	return ErrProductNotFound
}

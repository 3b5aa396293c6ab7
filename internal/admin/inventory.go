// Package admin holds the back-office tools: inventory, coupons, the order
// queue and site settings.
package admin

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrItemNotFound = errors.New("inventory item not found")

// Item is a catalog entry as the inventory manager edits it.
type Item struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Price              decimal.Decimal `json:"price"`
	Image              string          `json:"image"`
	Category           string          `json:"category"`
	StockQuantity      int             `json:"stockQuantity"`
	MinOrderLimit      int             `json:"minOrderLimit"`
	DiscountPercentage int             `json:"discountPercentage"`
	LowStock           bool            `json:"lowStock"`
}

// ItemPatch is a partial edit; nil fields keep their value.
type ItemPatch struct {
	Name               *string          `json:"name"`
	Price              *decimal.Decimal `json:"price"`
	Image              *string          `json:"image"`
	Category           *string          `json:"category"`
	StockQuantity      *int             `json:"stockQuantity"`
	MinOrderLimit      *int             `json:"minOrderLimit"`
	DiscountPercentage *int             `json:"discountPercentage"`
}

const lowStockBelow = 10

func validateItemPatch(p ItemPatch) map[string]string {
	errs := map[string]string{}
	if p.Price != nil && p.Price.IsNegative() {
		errs["price"] = "price must be >= 0"
	}
	if p.StockQuantity != nil && *p.StockQuantity < 0 {
		errs["stockQuantity"] = "stockQuantity must be >= 0"
	}
	if p.MinOrderLimit != nil && *p.MinOrderLimit < 1 {
		errs["minOrderLimit"] = "minOrderLimit must be >= 1"
	}
	if p.DiscountPercentage != nil && (*p.DiscountPercentage < 0 || *p.DiscountPercentage > 100) {
		errs["discountPercentage"] = "discountPercentage must be between 0 and 100"
	}
	return errs
}

func (p ItemPatch) apply(it Item) Item {
	if p.Name != nil {
		it.Name = strings.TrimSpace(*p.Name)
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Image != nil {
		it.Image = *p.Image
	}
	if p.Category != nil {
		it.Category = strings.TrimSpace(*p.Category)
	}
	if p.StockQuantity != nil {
		it.StockQuantity = *p.StockQuantity
	}
	if p.MinOrderLimit != nil {
		it.MinOrderLimit = *p.MinOrderLimit
	}
	if p.DiscountPercentage != nil {
		it.DiscountPercentage = *p.DiscountPercentage
	}
	it.LowStock = it.StockQuantity < lowStockBelow
	return it
}

type Inventory struct {
	mu    sync.RWMutex
	items []Item
}

func NewInventory(seed []Item) *Inventory {
	inv := &Inventory{items: make([]Item, 0, len(seed))}
	for _, it := range seed {
		inv.items = append(inv.items, ItemPatch{}.apply(it))
	}
	return inv
}

func (inv *Inventory) List() []Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return slices.Clone(inv.items)
}

// Create appends a new item, filling blanks with the "New Product" defaults.
func (inv *Inventory) Create(p ItemPatch) (Item, error) {
	if errs := validateItemPatch(p); len(errs) > 0 {
		return Item{}, &ValidationError{Fields: errs}
	}
	it := p.apply(Item{ID: uuid.NewString(), Price: decimal.Zero, MinOrderLimit: 1})
	if it.Name == "" {
		it.Name = "New Product"
	}
	if it.Category == "" {
		it.Category = "General"
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.items = append(inv.items, it)
	return it, nil
}

func (inv *Inventory) Update(id string, p ItemPatch) (Item, error) {
	if errs := validateItemPatch(p); len(errs) > 0 {
		return Item{}, &ValidationError{Fields: errs}
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i, it := range inv.items {
		if it.ID == id {
			inv.items[i] = p.apply(it)
			return inv.items[i], nil
		}
	}
	return Item{}, ErrItemNotFound
}

func (inv *Inventory) Delete(id string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i, it := range inv.items {
		if it.ID == id {
			inv.items = slices.Delete(inv.items, i, i+1)
			return nil
		}
	}
	return ErrItemNotFound
}

package cart

import (
	"github.com/shopspring/decimal"
	"github.com/wichananm65/stylesphere-storefront/internal/product"
)

// Item is a product snapshot with its quantity in the cart. Quantity is at least 1.
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

// LineTotal is price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Summary is the cart as shown to the customer. Totals are derived from Items
// every time a Summary is built.
type Summary struct {
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func Summarize(items []Item) Summary {
	total := decimal.Zero
	count := 0
	for _, it := range items {
		total = total.Add(it.LineTotal())
		count += it.Quantity
	}
	if items == nil {
		items = []Item{}
	}
	return Summary{Items: items, Total: total.Round(2), ItemCount: count}
}

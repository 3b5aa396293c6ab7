package brand

import (
	"github.com/shopspring/decimal"
)

type MonthlySales struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// Share is one slice of the product performance chart, in percent.
type Share struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type AlertLevel string

const (
	AlertCritical AlertLevel = "critical"
	AlertWarning  AlertLevel = "warning"
)

type RestockAlert struct {
	Name    string     `json:"name"`
	Stock   int        `json:"stock"`
	Reorder int        `json:"reorder"`
	Level   AlertLevel `json:"status"`
}

type Supplier struct {
	Name     string  `json:"name"`
	Delivery int     `json:"delivery"`
	Quality  float64 `json:"quality"`
	Orders   int     `json:"orders"`
	Rating   string  `json:"status"`
}

// Summary is the KPI row, derived from the last two months of the trend.
type Summary struct {
	MonthlyRevenue      decimal.Decimal `json:"monthlyRevenue"`
	RevenueChange       decimal.Decimal `json:"revenueChange"`
	MonthlyOrders       int             `json:"monthlyOrders"`
	OrdersChange        decimal.Decimal `json:"ordersChange"`
	AvgOrderValue       decimal.Decimal `json:"avgOrderValue"`
	AvgOrderValueChange decimal.Decimal `json:"avgOrderValueChange"`
	LowStockItems       int             `json:"lowStockItems"`
}

type Analytics struct {
	Summary     Summary        `json:"summary"`
	Sales       []MonthlySales `json:"salesData"`
	Performance []Share        `json:"productPerformance"`
	Restock     []RestockAlert `json:"restockingAlerts"`
	Suppliers   []Supplier     `json:"suppliers"`
}

func SalesTrend() []MonthlySales {
	rows := []struct {
		month   string
		revenue int64
		orders  int
	}{
		{"Jan", 12500, 85},
		{"Feb", 15800, 102},
		{"Mar", 18200, 118},
		{"Apr", 16900, 95},
		{"May", 22100, 142},
		{"Jun", 24500, 156},
	}
	out := make([]MonthlySales, 0, len(rows))
	for _, r := range rows {
		out = append(out, MonthlySales{Month: r.month, Revenue: decimal.NewFromInt(r.revenue), Orders: r.orders})
	}
	return out
}

func ProductPerformance() []Share {
	return []Share{
		{Name: "Royal Dress", Value: 35},
		{Name: "Heritage Collection", Value: 28},
		{Name: "Executive Suit", Value: 22},
		{Name: "Others", Value: 15},
	}
}

func RestockingAlerts() []RestockAlert {
	return []RestockAlert{
		{Name: "Ankara Maxi Dress", Stock: 5, Reorder: 20, Level: AlertCritical},
		{Name: "Elegant Evening Gown", Stock: 7, Reorder: 15, Level: AlertWarning},
		{Name: "Heritage Print Collection", Stock: 8, Reorder: 15, Level: AlertWarning},
	}
}

func Suppliers() []Supplier {
	return []Supplier{
		{Name: "Afri Textiles Co.", Delivery: 98, Quality: 4.8, Orders: 45, Rating: "excellent"},
		{Name: "Heritage Fabrics Ltd.", Delivery: 95, Quality: 4.6, Orders: 32, Rating: "good"},
		{Name: "Premium Threads Inc.", Delivery: 88, Quality: 4.2, Orders: 18, Rating: "average"},
	}
}

// percentChange is (cur-prev)/prev*100 rounded to one place; zero when prev is zero.
func percentChange(prev, cur decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
}

func avgOrder(m MonthlySales) decimal.Decimal {
	if m.Orders == 0 {
		return decimal.Zero
	}
	return m.Revenue.Div(decimal.NewFromInt(int64(m.Orders))).Round(2)
}

func SummarizeSales(sales []MonthlySales, alerts []RestockAlert) Summary {
	s := Summary{LowStockItems: len(alerts)}
	if len(sales) == 0 {
		return s
	}
	cur := sales[len(sales)-1]
	s.MonthlyRevenue = cur.Revenue
	s.MonthlyOrders = cur.Orders
	s.AvgOrderValue = avgOrder(cur)
	if len(sales) > 1 {
		prev := sales[len(sales)-2]
		s.RevenueChange = percentChange(prev.Revenue, cur.Revenue)
		s.OrdersChange = percentChange(decimal.NewFromInt(int64(prev.Orders)), decimal.NewFromInt(int64(cur.Orders)))
		s.AvgOrderValueChange = percentChange(avgOrder(prev), s.AvgOrderValue)
	}
	return s
}

func Report() Analytics {
	sales := SalesTrend()
	alerts := RestockingAlerts()
	return Analytics{
		Summary:     SummarizeSales(sales, alerts),
		Sales:       sales,
		Performance: ProductPerformance(),
		Restock:     alerts,
		Suppliers:   Suppliers(),
	}
}

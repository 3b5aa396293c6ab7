package admin

import (
	"github.com/shopspring/decimal"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
)

func SeedInventory() []Item {
	return []Item{
		{
			ID:            "1",
			Name:          "Royal Elegance Dress",
			Price:         decimal.RequireFromString("249.99"),
			Image:         "https://images.unsplash.com/photo-1697924293303-34488b60bf36",
			Category:      "Female",
			StockQuantity: 15,
			MinOrderLimit: 1,
		},
		{
			ID:                 "2",
			Name:               "Heritage Print Collection",
			Price:              decimal.RequireFromString("189.99"),
			Image:              "https://images.unsplash.com/photo-1709809081557-78f803ce93a0",
			Category:           "Female",
			StockQuantity:      8,
			MinOrderLimit:      1,
			DiscountPercentage: 15,
		},
	}
}

func SeedCoupons() []Coupon {
	return []Coupon{
		{ID: "1", Code: "WELCOME15", Discount: 15, ExpiryDate: "2026-12-31", IsActive: true, MinPurchase: decimal.NewFromInt(100)},
		{ID: "2", Code: "LUXURY20", Discount: 20, ExpiryDate: "2026-06-30", IsActive: true, MinPurchase: decimal.NewFromInt(300)},
	}
}

// SeedOrderQueue is the back-office order list. It is its own store and
// never sees storefront orders.
func SeedOrderQueue() []order.Order {
	return []order.Order{
		{
			ID:            "1",
			OrderNumber:   "MT8A4F2G",
			CustomerName:  "Sarah Johnson",
			CustomerEmail: "sarah@example.com",
			Total:         decimal.RequireFromString("349.99"),
			Status:        order.StatusProcessing,
			RefundStatus:  order.RefundNone,
			Date:          "2026-02-04",
			Items:         2,
		},
		{
			ID:            "2",
			OrderNumber:   "MT3H7K9L",
			CustomerName:  "Michael Chen",
			CustomerEmail: "michael@example.com",
			Total:         decimal.RequireFromString("189.99"),
			Status:        order.StatusShipped,
			RefundStatus:  order.RefundRequested,
			RefundReason:  "Product not as described",
			Date:          "2026-02-02",
			Items:         1,
		},
		{
			ID:            "3",
			OrderNumber:   "MT5D1P8Q",
			CustomerName:  "Emma Williams",
			CustomerEmail: "emma@example.com",
			Total:         decimal.RequireFromString("459.99"),
			Status:        order.StatusDelivered,
			RefundStatus:  order.RefundNone,
			Date:          "2026-01-28",
			Items:         1,
		},
	}
}

func DefaultSettings() Settings {
	return Settings{
		ShippingPolicy:        "Standard shipping: 5-7 business days. Express shipping: 2-3 business days. International shipping available.",
		RefundPolicy:          "Full refund within 30 days of purchase. Items must be unworn and in original packaging. Refund processed within 7-10 business days.",
		StoreHours:            "Monday-Friday: 9:00 AM - 6:00 PM EST\nSaturday: 10:00 AM - 4:00 PM EST\nSunday: Closed",
		FreeShippingThreshold: decimal.NewFromInt(150),
		StandardShippingFee:   decimal.NewFromInt(10),
		ExpressShippingFee:    decimal.NewFromInt(25),
	}
}

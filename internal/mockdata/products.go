// Package mockdata holds the static seed the storefront boots with.
package mockdata

import (
	"github.com/shopspring/decimal"
	"github.com/wichananm65/stylesphere-storefront/internal/product"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Products is the customer-facing catalog.
func Products() []product.Product {
	return []product.Product{
		{
			ID:                 "1",
			Name:               "Royal Elegance Dress",
			Price:              price("249.99"),
			Image:              "https://images.unsplash.com/photo-1697924293303-34488b60bf36",
			Category:           "Female",
			StockQuantity:      15,
			DiscountPercentage: 0,
			Rating:             4.8,
			Sizes:              []string{"XS", "S", "M", "L"},
			Colors:             []string{"Gold", "Black"},
			Sustainable:        true,
		},
		{
			ID:                 "2",
			Name:               "Heritage Print Collection",
			Price:              price("189.99"),
			Image:              "https://images.unsplash.com/photo-1709809081557-78f803ce93a0",
			Category:           "Female",
			StockQuantity:      8,
			DiscountPercentage: 15,
			Rating:             4.6,
			Sizes:              []string{"S", "M", "L", "XL"},
			Colors:             []string{"Red", "Gold"},
			Sustainable:        true,
		},
		{
			ID:            "3",
			Name:          "Executive Suit",
			Price:         price("399.99"),
			Image:         "https://images.unsplash.com/photo-1594938298603-c8148c4dae35",
			Category:      "Male",
			StockQuantity: 12,
			Rating:        4.7,
			Sizes:         []string{"M", "L", "XL", "XXL"},
			Colors:        []string{"Black", "Navy"},
		},
		{
			ID:            "4",
			Name:          "Ankara Maxi Dress",
			Price:         price("159.99"),
			Image:         "https://images.unsplash.com/photo-1583391733956-6c78276477e2",
			Category:      "Female",
			StockQuantity: 5,
			Rating:        4.5,
			Sizes:         []string{"XS", "S", "M"},
			Colors:        []string{"Green", "Gold"},
			Sustainable:   true,
		},
		{
			ID:                 "5",
			Name:               "Elegant Evening Gown",
			Price:              price("459.99"),
			Image:              "https://images.unsplash.com/photo-1566174053879-31528523f8ae",
			Category:           "Female",
			StockQuantity:      7,
			DiscountPercentage: 10,
			Rating:             4.9,
			Sizes:              []string{"S", "M", "L"},
			Colors:             []string{"Black", "Navy"},
		},
		{
			ID:            "6",
			Name:          "Kente Heritage Shirt",
			Price:         price("129.99"),
			Image:         "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf",
			Category:      "Male",
			StockQuantity: 20,
			Rating:        4.4,
			Sizes:         []string{"M", "L", "XL"},
			Colors:        []string{"Gold", "Green"},
			Sustainable:   true,
		},
		{
			ID:            "7",
			Name:          "Classic Linen Trousers",
			Price:         price("99.99"),
			Image:         "https://images.unsplash.com/photo-1473966968600-fa801b869a1a",
			Category:      "Male",
			StockQuantity: 0,
			Rating:        4.2,
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"White", "Beige"},
		},
		{
			ID:                 "8",
			Name:               "Beaded Statement Necklace",
			Price:              price("79.99"),
			Image:              "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f",
			Category:           "Accessories",
			StockQuantity:      25,
			DiscountPercentage: 20,
			Rating:             4.7,
			Colors:             []string{"Gold"},
			Sustainable:        true,
		},
		{
			ID:            "9",
			Name:          "Woven Leather Tote",
			Price:         price("219.99"),
			Image:         "https://images.unsplash.com/photo-1584917865442-de89df76afd3",
			Category:      "Accessories",
			StockQuantity: 3,
			Rating:        4.6,
			Colors:        []string{"Brown", "Black"},
		},
		{
			ID:            "10",
			Name:          "Silk Head Wrap",
			Price:         price("49.99"),
			Image:         "https://images.unsplash.com/photo-1601924994987-69e26d50dc26",
			Category:      "Accessories",
			StockQuantity: 30,
			Rating:        4.3,
			Colors:        []string{"Red", "Green", "Gold"},
			Sustainable:   true,
		},
	}
}

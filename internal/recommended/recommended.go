package recommended

import "github.com/wichananm65/stylesphere-storefront/internal/product"

// Section is the "Personalized for You" strip shown to signed-in shoppers.
type Section struct {
	Title    string            `json:"title"`
	Products []product.Listing `json:"products"`
}

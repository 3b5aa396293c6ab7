package category

// Item is one entry of the header's category filter.
type Item struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

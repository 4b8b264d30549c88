package catalog

// Product is an immutable catalog record keyed by its ASIN, a 10-character
// alphanumeric product code. BasePrice is the listing price before any COD
// markup is applied.
type Product struct {
	ASIN         string   `json:"asin"`
	Title        string   `json:"title"`
	Images       []string `json:"images"`
	BasePrice    float64  `json:"amazon_price"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewCount  *int     `json:"review_count,omitempty"`
	Seller       *string  `json:"seller,omitempty"`
	Availability string   `json:"availability"`
	Description  *string  `json:"description,omitempty"`
}

package cart

import "codmart-be/internal/pricing"

// ItemInput is a single requested cart line. Quantity is a pointer so an
// unspecified quantity (nil) can default to 1 while an explicit zero or
// negative value passes through unchanged.
type ItemInput struct {
	ASIN     string `json:"asin"`
	Quantity *int   `json:"quantity,omitempty"`
}

// LineItem is a resolved cart line with the product priced at calculation
// time.
type LineItem struct {
	ASIN     string                `json:"asin"`
	Quantity int                   `json:"quantity"`
	Product  pricing.PricedProduct `json:"product"`
}

// Cart holds the surviving line items in input order plus the aggregate
// totals across all of them.
type Cart struct {
	Items           []LineItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	TotalCommission float64    `json:"total_commission"`
	TotalHandling   float64    `json:"total_handling"`
	TotalCODPrice   float64    `json:"total_cod_price"`
}

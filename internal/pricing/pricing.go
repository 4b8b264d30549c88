package pricing

import (
	"math"

	"codmart-be/internal/catalog"
)

const (
	// CommissionRate is the markup charged on the base price.
	CommissionRate = 0.10

	// HandlingFee is the fixed per-unit surcharge in dollars.
	HandlingFee = 5.00
)

// Quote is the derived COD pricing for a single unit.
type Quote struct {
	Commission  float64 `json:"commission"`
	HandlingFee float64 `json:"handling_fee"`
	CODPrice    float64 `json:"cod_price"`
}

// PricedProduct is a catalog record annotated with its COD quote. The quote
// is always recomputed from the current base price, never stored on its own.
type PricedProduct struct {
	catalog.Product
	Quote
}

// Calculate derives the COD quote for a base price:
//
//	commission  = round(base * 0.10, 2)
//	handlingFee = 5.00
//	codPrice    = round(base + commission + handlingFee, 2)
//
// Amounts are rounded half away from zero to 2 decimal places.
func Calculate(basePrice float64) Quote {
	commission := round2(basePrice * CommissionRate)

	return Quote{
		Commission:  commission,
		HandlingFee: HandlingFee,
		CODPrice:    round2(basePrice + commission + HandlingFee),
	}
}

// Price annotates a catalog record with its quote.
func Price(p catalog.Product) PricedProduct {
	return PricedProduct{
		Product: p,
		Quote:   Calculate(p.BasePrice),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

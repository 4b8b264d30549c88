package cart

import "errors"

var (
	// -- Validation & Input --
	ErrUnknownProduct  = errors.New("unknown product in cart")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidLookup = errors.New("could not resolve a product identifier from the request")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)

package order

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidStatus = errors.New("unknown order status")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Database & Operation Failures --
	ErrStorageFailure = errors.New("storage did not confirm the write")
)

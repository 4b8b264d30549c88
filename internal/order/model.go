package order

import (
	"fmt"
	"time"

	"codmart-be/internal/cart"
)

// Status is the order lifecycle state. The set is closed but any transition
// between known values is allowed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ParseStatus validates a raw status string against the known set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// DefaultPaymentMethod is used when order submission omits one.
const DefaultPaymentMethod = "COD"

// ShippingInfo is the delivery destination embedded in an order. Presence is
// the only validation applied; Country defaults to "US".
type ShippingInfo struct {
	FullName     string  `json:"full_name"`
	Phone        string  `json:"phone"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postal_code"`
	Country      string  `json:"country"`
}

// Order is a persisted COD order. Cart is a frozen snapshot taken at
// submission time; later catalog price changes never alter it. Orders are
// mutated only through status updates and are never deleted.
type Order struct {
	ID            string       `json:"id"`
	Cart          cart.Cart    `json:"cart"`
	Shipping      ShippingInfo `json:"shipping"`
	PaymentMethod string       `json:"payment_method"`
	Status        Status       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

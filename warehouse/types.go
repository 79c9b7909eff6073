// Package warehouse holds the destination-side records used by the
// analyzer tests and the resolve command examples.
package warehouse

import (
	"time"
)

// Audit tracks who touched a warehouse record.
type Audit struct {
	CreatedBy string
	UpdatedBy string
}

// Customer is a warehouse customer.
type Customer struct {
	Audit

	ID         int64
	Email      string
	Name       string
	Tier       string
	Points     int
	Attributes Attributes
}

// Attributes is free-form customer metadata.
type Attributes map[string]string

// Order is a customer's purchase.
//
//mapping:options date-format=02.01.2006,map-null=false
type Order struct {
	ID          int64
	CustomerID  int64
	Status      string
	TotalAmount int64 `mapping:"TotalCents"`
	Items       LineItems
	PlacedAt    *time.Time
}

// OrderItem is a line item within an order.
type OrderItem struct {
	ProductID  int64
	Name       string
	Quantity   int
	UnitPrice  int64
	TotalPrice int64
}

// LineItems is the line list of an order.
type LineItems []OrderItem

// Package store holds the source-side records used by the analyzer tests
// and the resolve command examples.
package store

import (
	"time"
)

// Audit carries bookkeeping shared by store records.
type Audit struct {
	CreatedBy string
	createdAt time.Time
}

// Customer is the user placing orders.
type Customer struct {
	Audit

	ID       int64
	Email    string
	FullName string `mapping:"Name"`
	Address  *string
	Labels   Labels
	segment  string `mapping:"Tier,optional"`
	loyalty  int
}

// GetLoyalty returns the loyalty balance.
//
//mapping:pair Points,optional
func (c *Customer) GetLoyalty() int { return c.loyalty }

// SetLoyalty replaces the loyalty balance.
func (c *Customer) SetLoyalty(v int) { c.loyalty = v }

// Labels is free-form customer metadata.
type Labels map[string]string

// Order is a transaction made by a customer.
type Order struct {
	_ struct{} `mapping-options:"date-format=2006-01-02"`

	ID         int64
	CustomerID int64
	Status     OrderStatus
	TotalCents int64
	Items      OrderItems
	OrderedAt  time.Time
}

// OrderItem is a product line within an order.
type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice int64
}

// OrderItems is the line list of an order.
type OrderItems []OrderItem

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

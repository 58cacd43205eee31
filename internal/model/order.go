package model

import (
	"database/sql"
	"time"
)

// Shipped status values for an order. The planner only ever considers
// pending orders; the shipped/delivered transitions are driven by an
// external fulfilment process.
const (
	StatusPending   = "pending"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

// Order represents a customer order. Weight and value are copied from the
// product at order time so the delivery planner works off a stable snapshot
// even if the catalogue changes later.
//
// ArrivedAt uses sql.NullTime so "never arrived" is an explicit absent
// value on the wire ({Time, Valid}) rather than a zero-date sentinel.
type Order struct {
	OrderID       int64        `json:"order_id" db:"order_id"`
	UserID        int64        `json:"user_id" db:"user_id"`
	ProductID     int64        `json:"product_id" db:"product_id"`
	ProductName   string       `json:"product_name" db:"product_name"`
	ShippedStatus string       `json:"shipped_status" db:"shipped_status"`
	Weight        int          `json:"weight" db:"weight"`
	Value         int          `json:"value" db:"value"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	ArrivedAt     sql.NullTime `json:"arrived_at" db:"arrived_at"`
}

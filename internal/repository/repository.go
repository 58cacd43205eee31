package repository

import (
	"context"

	"robomart/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// ListAll retrieves the full catalogue snapshot in product-ID order.
	// Listings filter, sort, and page this snapshot in memory, so a single
	// invocation always works off one consistent read.
	ListAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// ListAll retrieves the full order history snapshot in order-ID order.
	ListAll(ctx context.Context) ([]model.Order, error)

	// ListPending retrieves every order still awaiting shipment, in
	// order-ID order. The delivery planner must see the complete pending
	// set; truncating it would produce sub-optimal plans.
	ListPending(ctx context.Context) ([]model.Order, error)
}

package service

import (
	"context"

	"robomart/internal/model"
	"robomart/internal/query"
)

// ProductService defines operations for the product catalogue.
type ProductService interface {
	// Search runs a keyword search over the catalogue with sorting and
	// pagination.
	Search(ctx context.Context, req model.ListRequest) (*model.Page[model.Product], error)

	// List retrieves an unfiltered catalogue page in natural order. Kept
	// for compatibility with simple list views.
	List(ctx context.Context, page, limit int) (*model.Page[model.Product], error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)
}

// OrderService defines operations for the order history.
type OrderService interface {
	// Search runs a keyword search over the order history with sorting and
	// pagination.
	Search(ctx context.Context, req model.ListRequest) (*model.Page[model.Order], error)
}

// RobotService defines operations for robot delivery planning.
type RobotService interface {
	// DeliveryPlan computes the value-maximising selection of pending
	// orders that fits within the robot's weight capacity.
	DeliveryPlan(ctx context.Context, capacity int) (*model.DeliveryPlan, error)
}

// querySpec translates a listing request into a query spec against the
// given search column. The match type comes validated out of ParseMatchType;
// everything else is validated by the query engine itself.
func querySpec(req model.ListRequest, column string) (query.Spec, error) {
	match, err := query.ParseMatchType(req.Type)
	if err != nil {
		return query.Spec{}, err
	}

	spec := query.Spec{
		Keyword:   req.Search,
		Match:     match,
		SortField: req.SortField,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
	if req.Search != "" {
		spec.Column = column
	}
	return spec, nil
}

package service

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"robomart/internal/model"
	"robomart/internal/query"
	"robomart/internal/repository"

	"github.com/rs/zerolog"
)

// orderQuery declares the queryable surface of the order history. Orders
// without an arrival timestamp sort before all arrived ones ascending, the
// NULLS FIRST equivalent, so descending shows arrived orders first.
var orderQuery = query.Definition[model.Order]{
	Columns: map[string]func(model.Order) string{
		"name": func(o model.Order) string { return o.ProductName },
	},
	Sort: map[string]func(a, b model.Order) int{
		"order_id":       func(a, b model.Order) int { return cmp.Compare(a.OrderID, b.OrderID) },
		"name":           func(a, b model.Order) int { return strings.Compare(a.ProductName, b.ProductName) },
		"shipped_status": func(a, b model.Order) int { return strings.Compare(a.ShippedStatus, b.ShippedStatus) },
		"created_at":     func(a, b model.Order) int { return a.CreatedAt.Compare(b.CreatedAt) },
		"arrived_at":     compareArrivedAt,
	},
	ID: func(o model.Order) int64 { return o.OrderID },
}

func compareArrivedAt(a, b model.Order) int {
	switch {
	case !a.ArrivedAt.Valid && !b.ArrivedAt.Valid:
		return 0
	case !a.ArrivedAt.Valid:
		return -1
	case !b.ArrivedAt.Valid:
		return 1
	default:
		return a.ArrivedAt.Time.Compare(b.ArrivedAt.Time)
	}
}

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Search runs a keyword search over the order history. The search column is
// the denormalized product name carried on each order.
func (s *orderService) Search(ctx context.Context, req model.ListRequest) (*model.Page[model.Order], error) {
	spec, err := querySpec(req, "name")
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load order snapshot")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	result, err := query.Run(orders, orderQuery, spec)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("keyword", req.Search).
		Str("type", req.Type).
		Int("page", req.Page).
		Int("total", result.Total).
		Msg("order search completed")

	return &model.Page[model.Order]{Data: result.Items, Total: result.Total}, nil
}

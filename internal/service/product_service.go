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

// productQuery declares the queryable surface of the catalogue. The sort
// whitelist is fixed here rather than derived from the model so the wire
// contract stays stable under refactors.
var productQuery = query.Definition[model.Product]{
	Columns: map[string]func(model.Product) string{
		"name": func(p model.Product) string { return p.Name },
	},
	Sort: map[string]func(a, b model.Product) int{
		"product_id": func(a, b model.Product) int { return cmp.Compare(a.ProductID, b.ProductID) },
		"name":       func(a, b model.Product) int { return strings.Compare(a.Name, b.Name) },
		"value":      func(a, b model.Product) int { return cmp.Compare(a.Value, b.Value) },
		"weight":     func(a, b model.Product) int { return cmp.Compare(a.Weight, b.Weight) },
		"created_at": func(a, b model.Product) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
	ID: func(p model.Product) int64 { return p.ProductID },
}

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Search runs a keyword search over the catalogue. The search column is
// always the product name.
func (s *productService) Search(ctx context.Context, req model.ListRequest) (*model.Page[model.Product], error) {
	spec, err := querySpec(req, "name")
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load catalogue snapshot")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	result, err := query.Run(products, productQuery, spec)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("keyword", req.Search).
		Str("type", req.Type).
		Int("page", req.Page).
		Int("total", result.Total).
		Msg("product search completed")

	return &model.Page[model.Product]{Data: result.Items, Total: result.Total}, nil
}

// List retrieves an unfiltered catalogue page in natural order. Out-of-range
// paging parameters fall back to defaults here; this endpoint predates the
// validating search contract and stays lenient for its existing consumers.
func (s *productService) List(ctx context.Context, page, limit int) (*model.Page[model.Product], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load catalogue snapshot")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	result, err := query.Run(products, productQuery, query.Spec{
		Match:    query.MatchExact,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, err
	}

	return &model.Page[model.Product]{Data: result.Items, Total: result.Total}, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if id <= 0 {
		return nil, model.NewValidationError("product ID must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

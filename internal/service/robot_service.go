package service

import (
	"context"
	"fmt"

	"robomart/internal/model"
	"robomart/internal/planner"
	"robomart/internal/repository"

	"github.com/rs/zerolog"
)

// robotService implements RobotService.
type robotService struct {
	orderRepo repository.OrderRepository
	robotID   string
	logger    zerolog.Logger
}

// NewRobotService creates a new robot service for the given robot.
func NewRobotService(orderRepo repository.OrderRepository, robotID string, logger zerolog.Logger) RobotService {
	return &robotService{
		orderRepo: orderRepo,
		robotID:   robotID,
		logger:    logger.With().Str("service", "robot").Logger(),
	}
}

// DeliveryPlan computes a delivery plan over the complete current pending
// set. The plan is advisory: order statuses are not touched here, and
// dispatching the robot (including resolving concurrent plans that select
// overlapping orders) is the consumer's responsibility.
func (s *robotService) DeliveryPlan(ctx context.Context, capacity int) (*model.DeliveryPlan, error) {
	if capacity <= 0 {
		return nil, model.NewValidationError("capacity must be positive")
	}

	pending, err := s.orderRepo.ListPending(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load pending orders")
		return nil, fmt.Errorf("failed to get pending orders: %w", err)
	}

	plan, err := planner.Plan(pending, s.robotID, capacity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("capacity", capacity).
		Int("pending", len(pending)).
		Int("selected", len(plan.Orders)).
		Int("total_weight", plan.TotalWeight).
		Int("total_value", plan.TotalValue).
		Msg("delivery plan computed")

	return &plan, nil
}

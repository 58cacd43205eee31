package service

import (
	"context"
	"errors"
	"testing"

	"robomart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(id int64, weight, value int) model.Order {
	return model.Order{
		OrderID:       id,
		ShippedStatus: model.StatusPending,
		Weight:        weight,
		Value:         value,
	}
}

func TestRobotService_DeliveryPlan(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	pending := []model.Order{
		pendingOrder(1, 10, 60),
		pendingOrder(2, 20, 100),
		pendingOrder(3, 30, 120),
	}

	mockRepo := new(MockOrderRepository)
	svc := NewRobotService(mockRepo, "robot-001", logger)
	mockRepo.On("ListPending", ctx).Return(pending, nil)

	plan, err := svc.DeliveryPlan(ctx, 50)
	require.NoError(t, err)

	assert.Equal(t, "robot-001", plan.RobotID)
	assert.Equal(t, 50, plan.TotalWeight)
	assert.Equal(t, 220, plan.TotalValue)
	require.Len(t, plan.Orders, 2)
	assert.Equal(t, int64(2), plan.Orders[0].OrderID)
	assert.Equal(t, int64(3), plan.Orders[1].OrderID)
	mockRepo.AssertExpectations(t)
}

func TestRobotService_DeliveryPlan_EmptyPendingSet(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	svc := NewRobotService(mockRepo, "robot-001", zerolog.Nop())
	mockRepo.On("ListPending", mock.Anything).Return([]model.Order{}, nil)

	plan, err := svc.DeliveryPlan(context.Background(), 50)
	require.NoError(t, err)

	assert.Equal(t, "robot-001", plan.RobotID)
	assert.Zero(t, plan.TotalWeight)
	assert.Zero(t, plan.TotalValue)
	assert.Empty(t, plan.Orders)
}

func TestRobotService_DeliveryPlan_InvalidCapacity(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	svc := NewRobotService(mockRepo, "robot-001", zerolog.Nop())

	for _, capacity := range []int{0, -10} {
		_, err := svc.DeliveryPlan(context.Background(), capacity)
		require.Error(t, err)
		assert.Equal(t, model.ErrCodeValidation, model.ErrorCode(err))
	}

	// Validation fails before the repository is ever consulted.
	mockRepo.AssertNotCalled(t, "ListPending", mock.Anything)
}

func TestRobotService_DeliveryPlan_RepositoryError(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	svc := NewRobotService(mockRepo, "robot-001", zerolog.Nop())
	mockRepo.On("ListPending", mock.Anything).Return(nil, errors.New("database error"))

	_, err := svc.DeliveryPlan(context.Background(), 50)
	require.Error(t, err)
	assert.Equal(t, model.ErrCodeInternalError, model.ErrorCode(err))
}

func TestRobotService_DeliveryPlan_Deterministic(t *testing.T) {
	pending := []model.Order{
		pendingOrder(1, 10, 30),
		pendingOrder(2, 10, 30),
		pendingOrder(3, 20, 60),
	}

	mockRepo := new(MockOrderRepository)
	svc := NewRobotService(mockRepo, "robot-001", zerolog.Nop())
	mockRepo.On("ListPending", mock.Anything).Return(pending, nil)

	first, err := svc.DeliveryPlan(context.Background(), 20)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := svc.DeliveryPlan(context.Background(), 20)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

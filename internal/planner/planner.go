// Package planner computes delivery plans: a capacity-constrained,
// value-maximising selection of pending orders for a single robot, solved
// as a 0/1 knapsack with dynamic programming.
//
// Weights and capacity are integers end-to-end, so no quantisation scaling
// is applied. Cost is O(orders x capacity) time and space, which is trivial
// at the scale this service runs at; for much larger order books the
// weight/value pre-filter below keeps the item count down before the DP.
package planner

import (
	"slices"

	"robomart/internal/model"
)

// Plan selects the subset of pending orders maximising total value without
// exceeding capacity and assigns it to robotID.
//
// The result is deterministic: items are considered in ascending order-ID
// order and the DP only accepts strict value improvements, so when several
// subsets tie on total value the one reached by the earliest-considered
// orders wins. The selected orders are returned in ascending order-ID order.
//
// An empty order set yields a valid empty plan. The planner never mutates
// order state; dispatching the physical robot is the caller's concern.
func Plan(orders []model.Order, robotID string, capacity int) (model.DeliveryPlan, error) {
	if capacity <= 0 {
		return model.DeliveryPlan{}, model.NewValidationError("capacity must be positive")
	}

	items := candidates(orders, capacity)

	plan := model.DeliveryPlan{
		RobotID: robotID,
		Orders:  []model.Order{},
	}
	if len(items) == 0 {
		return plan, nil
	}

	// best[w] holds the maximum achievable value within weight budget w
	// considering the items processed so far. Iterating w from high to low
	// ensures each item is taken at most once. choice[i][w] records whether
	// item i improved budget w, for reconstruction.
	best := make([]int, capacity+1)
	choice := make([][]bool, len(items))
	for i, item := range items {
		choice[i] = make([]bool, capacity+1)
		for w := capacity; w >= item.Weight; w-- {
			if v := best[w-item.Weight] + item.Value; v > best[w] {
				best[w] = v
				choice[i][w] = true
			}
		}
	}

	// Walk the choice table backwards to recover the selected subset.
	w := capacity
	for i := len(items) - 1; i >= 0; i-- {
		if choice[i][w] {
			plan.Orders = append(plan.Orders, items[i])
			w -= items[i].Weight
		}
	}
	slices.Reverse(plan.Orders)

	for _, order := range plan.Orders {
		plan.TotalWeight += order.Weight
		plan.TotalValue += order.Value
	}
	return plan, nil
}

// candidates returns the orders worth feeding to the DP, sorted by
// ascending order ID. Orders heavier than the whole capacity can never be
// selected, and orders with non-positive value never improve a solution,
// so both are dropped up front without affecting optimality.
func candidates(orders []model.Order, capacity int) []model.Order {
	items := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if order.Weight < 0 || order.Weight > capacity || order.Value <= 0 {
			continue
		}
		items = append(items, order)
	}
	slices.SortFunc(items, func(a, b model.Order) int {
		switch {
		case a.OrderID < b.OrderID:
			return -1
		case a.OrderID > b.OrderID:
			return 1
		default:
			return 0
		}
	})
	return items
}

package model

// DeliveryPlan is the result of a capacity-constrained order selection for a
// single robot. Plans are computed per request and never persisted.
//
// Invariants: TotalWeight <= requested capacity, TotalWeight and TotalValue
// equal the sums over Orders, and Orders is sorted by ascending order ID.
type DeliveryPlan struct {
	RobotID     string  `json:"robot_id"`
	TotalWeight int     `json:"total_weight"`
	TotalValue  int     `json:"total_value"`
	Orders      []Order `json:"orders"`
}

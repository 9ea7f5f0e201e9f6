package services

import "github.com/rokan2059/coffee/entity"

// The fulfillment machine is deliberately permissive: staff buttons set
// any stage directly, including skipping back to pending, so the only
// enforced rule is that completed and cancelled orders never move again.

var stages = []entity.OrderStatus{
	entity.StatusPending, entity.StatusPreparing, entity.StatusReady, entity.StatusCompleted,
}

func ValidStatus(s entity.OrderStatus) bool {
	return s == entity.StatusCancelled || StageIndex(s) >= 0
}

func IsTerminal(s entity.OrderStatus) bool {
	return s == entity.StatusCompleted || s == entity.StatusCancelled
}

func CanTransition(from, to entity.OrderStatus) bool {
	if !ValidStatus(to) {
		return false
	}
	return !IsTerminal(from)
}

// StageIndex is the order's position on the four-stage progress bar.
// Cancelled orders have no position and report -1.
func StageIndex(s entity.OrderStatus) int {
	for i, v := range stages {
		if s == v {
			return i
		}
	}
	return -1
}

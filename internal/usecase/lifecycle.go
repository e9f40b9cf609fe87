package usecase

import (
	"fmt"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

// orderTransitions is the full set of legal lifecycle moves. Completed
// and cancelled are terminal.
var orderTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusInProgress, model.OrderStatusCancelled},
	model.OrderStatusInProgress: {model.OrderStatusCompleted, model.OrderStatusCancelled},
}

// CanTransition reports whether from -> to is a legal lifecycle move.
func CanTransition(from, to model.OrderStatus) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// GuardTransition rejects illegal moves with a state error carrying
// both statuses; no mutation happens on rejection.
func GuardTransition(from, to model.OrderStatus) error {
	if !CanTransition(from, to) {
		return domainErrors.State(fmt.Sprintf("cannot transition order from %q to %q", from, to))
	}
	return nil
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s model.OrderStatus) bool {
	switch s {
	case model.OrderStatusPending, model.OrderStatusInProgress, model.OrderStatusCompleted, model.OrderStatusCancelled:
		return true
	}
	return false
}

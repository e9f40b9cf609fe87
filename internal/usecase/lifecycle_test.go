package usecase

import (
	"testing"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to model.OrderStatus
		want     bool
	}{
		{model.OrderStatusPending, model.OrderStatusInProgress, true},
		{model.OrderStatusPending, model.OrderStatusCancelled, true},
		{model.OrderStatusPending, model.OrderStatusCompleted, false},
		{model.OrderStatusInProgress, model.OrderStatusCompleted, true},
		{model.OrderStatusInProgress, model.OrderStatusCancelled, true},
		{model.OrderStatusInProgress, model.OrderStatusPending, false},
		{model.OrderStatusCompleted, model.OrderStatusCancelled, false},
		{model.OrderStatusCompleted, model.OrderStatusInProgress, false},
		{model.OrderStatusCancelled, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestGuardTransition(t *testing.T) {
	if err := GuardTransition(model.OrderStatusPending, model.OrderStatusInProgress); err != nil {
		t.Fatalf("legal transition rejected: %v", err)
	}

	err := GuardTransition(model.OrderStatusCompleted, model.OrderStatusCancelled)
	if !domainErrors.IsState(err) {
		t.Fatalf("expected state error, got %v", err)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []model.OrderStatus{
		model.OrderStatusPending, model.OrderStatusInProgress,
		model.OrderStatusCompleted, model.OrderStatusCancelled,
	} {
		if !ValidStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ValidStatus("shipped") {
		t.Error("unknown status accepted")
	}
}

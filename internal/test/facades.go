package test

import (
	"context"
	"sync"
	"time"

	"github.com/strungco/stringmart/internal/domain/model"
)

// SweepCall records one CancelExpiredOrders invocation.
type SweepCall struct {
	Cutoff time.Time
}

// SweepFacadeStub mimics the facade the expiry sweeper runs against.
type SweepFacadeStub struct {
	CancelFn func(context.Context, time.Time) ([]model.Order, error)
	NotifyFn func(context.Context, int64, string, string, string) error

	mu      sync.Mutex
	Sweeps  []SweepCall
	Notices []Notification
}

// Lock exposes internal mutex for external synchronization.
func (s *SweepFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *SweepFacadeStub) Unlock() { s.mu.Unlock() }

// CancelExpiredOrders records the sweep and returns configured orders.
func (s *SweepFacadeStub) CancelExpiredOrders(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	s.mu.Lock()
	s.Sweeps = append(s.Sweeps, SweepCall{Cutoff: cutoff})
	s.mu.Unlock()
	if s.CancelFn != nil {
		return s.CancelFn(ctx, cutoff)
	}
	return nil, nil
}

// Notify records the delivery request.
func (s *SweepFacadeStub) Notify(ctx context.Context, userID int64, title, message, actionURL string) error {
	s.mu.Lock()
	s.Notices = append(s.Notices, Notification{UserID: userID, Title: title, Message: message, ActionURL: actionURL})
	s.mu.Unlock()
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, userID, title, message, actionURL)
	}
	return nil
}

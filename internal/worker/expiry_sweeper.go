package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/strungco/stringmart/internal/domain/model"
)

// SweepFacade exposes the subset of application functionality required by the sweeper.
type SweepFacade interface {
	CancelExpiredOrders(ctx context.Context, cutoff time.Time) ([]model.Order, error)
	Notify(ctx context.Context, userID int64, title, message, actionURL string) error
}

// ExpirySweeper periodically cancels unpaid orders past their TTL and
// notifies the affected users concurrently.
type ExpirySweeper struct {
	facade        SweepFacade
	sweepInterval time.Duration
	orderTTL      time.Duration
	workers       int
	logger        *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewExpirySweeper constructs the sweeper with its notification pool.
func NewExpirySweeper(facade SweepFacade, sweepInterval, orderTTL time.Duration, workers int, logger *slog.Logger) *ExpirySweeper {
	if workers <= 0 {
		workers = 1
	}
	return &ExpirySweeper{
		facade:        facade,
		sweepInterval: sweepInterval,
		orderTTL:      orderTTL,
		workers:       workers,
		logger:        logger,
		jobs:          make(chan model.Order, workers*4),
	}
}

// Start launches background sweeping.
func (s *ExpirySweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *ExpirySweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *ExpirySweeper) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.orderTTL)
	cancelled, err := s.facade.CancelExpiredOrders(ctx, cutoff)
	if err != nil {
		s.logger.Error("expiry sweep failed", slog.String("error", err.Error()))
		return
	}
	if len(cancelled) > 0 {
		s.logger.Info("expired orders cancelled", slog.Int("count", len(cancelled)))
	}
	for _, order := range cancelled {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- order:
		}
	}
}

func (s *ExpirySweeper) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-s.jobs:
			if !ok {
				return
			}
			s.notifyCancelled(ctx, order)
		}
	}
}

func (s *ExpirySweeper) notifyCancelled(ctx context.Context, order model.Order) {
	err := s.facade.Notify(ctx, order.UserID, "Order cancelled",
		fmt.Sprintf("Your stringing order #%d was cancelled because payment did not arrive in time.", order.ID),
		fmt.Sprintf("/orders/%d", order.ID))
	if err != nil {
		s.logger.Error("cancellation notice failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()))
	}
}

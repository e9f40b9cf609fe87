package usecase

import "time"

// QueueEstimator derives an expected completion date from the depth of
// the unresolved-order queue.
type QueueEstimator struct {
	OrdersPerDay   int
	MaxQueueDays   int
	ProcessingDays int
}

// NewQueueEstimator applies defaults for non-positive knobs.
func NewQueueEstimator(ordersPerDay, maxQueueDays, processingDays int) QueueEstimator {
	if ordersPerDay <= 0 {
		ordersPerDay = 5
	}
	if maxQueueDays <= 0 {
		maxQueueDays = 7
	}
	if processingDays <= 0 {
		processingDays = 2
	}
	return QueueEstimator{OrdersPerDay: ordersPerDay, MaxQueueDays: maxQueueDays, ProcessingDays: processingDays}
}

// Estimate computes now + queue days (capped) + processing days, then
// pushes the result past a non-working day. Sundays are non-working.
func (e QueueEstimator) Estimate(now time.Time, pendingCount int) time.Time {
	queueDays := (pendingCount + e.OrdersPerDay - 1) / e.OrdersPerDay
	if queueDays > e.MaxQueueDays {
		queueDays = e.MaxQueueDays
	}

	estimate := now.AddDate(0, 0, queueDays+e.ProcessingDays)
	if estimate.Weekday() == time.Sunday {
		estimate = estimate.AddDate(0, 0, 1)
	}
	return estimate
}

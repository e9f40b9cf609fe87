package model

import "time"

// PointsReason categorizes a loyalty points mutation.
type PointsReason string

const (
	PointsReasonOrderCompleted PointsReason = "order_completed"
	PointsReasonReferral       PointsReason = "referral"
	PointsReasonReview         PointsReason = "review"
	PointsReasonAdjustment     PointsReason = "adjustment"
)

// PointsLogEntry is one immutable row of the loyalty ledger.
// BalanceAfter equals the user's running balance at that point in the log.
type PointsLogEntry struct {
	ID               int64
	UserID           int64
	Amount           int64
	Reason           PointsReason
	ReferenceOrderID *int64
	BalanceAfter     int64
	CreatedAt        time.Time
}

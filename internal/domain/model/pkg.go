package model

import "time"

// Package is a prepaid bundle of stringing jobs sold from the catalog.
type Package struct {
	ID           int64
	Name         string
	Price        float64
	Uses         int
	ValidityDays int
}

// UserPackageStatus tracks whether a purchased bundle still has uses left.
type UserPackageStatus string

const (
	UserPackageStatusActive   UserPackageStatus = "active"
	UserPackageStatusDepleted UserPackageStatus = "depleted"
)

// UserPackage is a bundle instance owned by a user. Remaining is
// decremented once per order; the instance flips to depleted at zero
// and is never deleted while orders reference it.
type UserPackage struct {
	ID           int64
	UserID       int64
	PackageID    int64
	Remaining    int
	OriginalUses int
	Status       UserPackageStatus
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Usable reports whether the package can fund an order right now.
func (p *UserPackage) Usable(now time.Time) bool {
	return p.Status == UserPackageStatusActive && p.Remaining > 0 && p.ExpiresAt.After(now)
}

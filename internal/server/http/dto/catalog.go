package dto

import "time"

// ProductResponse mirrors a catalog string.
type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PackageResponse mirrors a purchasable bundle.
type PackageResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Uses         int     `json:"uses"`
	ValidityDays int     `json:"validity_days"`
}

// UserPackageResponse mirrors a bundle owned by the caller.
type UserPackageResponse struct {
	ID        int64     `json:"id"`
	PackageID int64     `json:"package_id"`
	Remaining int       `json:"remaining"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserVoucherResponse mirrors a voucher instance with catalog terms.
type UserVoucherResponse struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	MinPurchase float64   `json:"min_purchase"`
	ValidUntil  time.Time `json:"valid_until"`
	Status      string    `json:"status"`
}

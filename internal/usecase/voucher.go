package usecase

import (
	"time"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

// ValidateUserVoucher checks redemption eligibility of a voucher
// instance. The check order is part of the contract: record status,
// then date window, then first-order restriction. A voucher that is
// both expired and first-order-ineligible reports the date error.
func ValidateUserVoucher(uv *model.UserVoucher, now time.Time, priorOrders int) error {
	if uv.Status != model.UserVoucherStatusActive {
		return domainErrors.ErrVoucherUsed
	}
	if now.Before(uv.Voucher.ValidFrom) || now.After(uv.Voucher.ValidUntil) {
		return domainErrors.ErrVoucherNotValid
	}
	if uv.Voucher.FirstOrderOnly && priorOrders > 0 {
		return domainErrors.ErrVoucherFirstOrderOnly
	}
	return nil
}

// ValidateCatalogVoucher enforces catalog-level rules before an
// instance exists: usage cap and minimum purchase against the current
// order's base price.
func ValidateCatalogVoucher(v *model.Voucher, basePrice float64) error {
	if v.UsageCap != nil && v.UsedCount >= *v.UsageCap {
		return domainErrors.ErrVoucherExhausted
	}
	if v.MinPurchase > basePrice {
		return domainErrors.ErrVoucherMinPurchase
	}
	return nil
}

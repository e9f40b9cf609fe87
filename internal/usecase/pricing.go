package usecase

import (
	"fmt"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

// PriceQuote is the outcome of pricing an order.
type PriceQuote struct {
	FinalPrice float64
	Discount   float64
}

// ComputePrice derives the final price from the base price, optional
// package funding and optional voucher terms. Pure and deterministic:
// identical inputs always produce identical quotes.
//
// A package prepays the whole job, so the discount covers the full base
// price and a voucher is not combinable with it. The discount never
// exceeds the base price, so FinalPrice = basePrice - Discount >= 0.
func ComputePrice(basePrice float64, packageApplied bool, terms *model.VoucherTerms) (PriceQuote, error) {
	if basePrice < 0 {
		return PriceQuote{}, domainErrors.ErrInvalidAmount
	}

	if packageApplied {
		return PriceQuote{FinalPrice: 0, Discount: basePrice}, nil
	}

	if terms == nil {
		return PriceQuote{FinalPrice: basePrice, Discount: 0}, nil
	}

	if terms.MinPurchase > basePrice {
		return PriceQuote{}, domainErrors.ErrVoucherMinPurchase
	}

	var discount float64
	switch terms.Type {
	case model.VoucherTypePercentage:
		discount = basePrice * terms.Value / 100
	case model.VoucherTypeFixed:
		discount = terms.Value
	default:
		return PriceQuote{}, domainErrors.Validation(fmt.Sprintf("unknown voucher type %q", terms.Type))
	}

	// Clip so the final price never drops below zero.
	if discount < 0 {
		discount = 0
	}
	if discount > basePrice {
		discount = basePrice
	}

	return PriceQuote{FinalPrice: basePrice - discount, Discount: discount}, nil
}

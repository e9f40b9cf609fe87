package repository

import (
	"context"

	"github.com/strungco/stringmart/internal/domain/model"
)

// PaymentRepository reads payment records and creates standalone ones
// (package purchases). Order-linked payments are created inside the
// fulfillment commit; confirmation goes through FulfillmentRepository.
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Payment, error)
	CreateForPackage(ctx context.Context, userID, packageID int64, amount float64, provider string) (*model.Payment, error)
	LatestSuccessfulByOrder(ctx context.Context, orderID int64) (*model.Payment, error)
}

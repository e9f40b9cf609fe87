package handlers

import (
	"context"
	"time"

	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
	"github.com/strungco/stringmart/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password, referralCode string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, model.Role, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, cmd usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, orderID int64) (*model.Order, error)
	QueueStatus(ctx context.Context, orderID int64) (*usecase.QueueStatus, error)
	GrantReviewReward(ctx context.Context, userID, orderID int64) (*model.PointsLogEntry, error)
}

// AdminFacade groups the operations restricted to administrators.
type AdminFacade interface {
	CompleteOrder(ctx context.Context, orderID, adminID int64, notes string) (*repository.CompletionResult, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus, notes string) (*model.Order, error)
	ConfirmPayment(ctx context.Context, paymentID, adminID int64, txnRef string) (*model.Payment, error)
	CancelExpiredOrders(ctx context.Context, cutoff time.Time) ([]model.Order, error)
	AdjustStock(ctx context.Context, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error)
	StockLevel(ctx context.Context, productID int64) (*model.StockLevel, error)
	StockLogs(ctx context.Context, productID int64) ([]model.StockLogEntry, error)
	LowStock(ctx context.Context) ([]model.StockLevel, error)
}

// WalletFacade provides points, voucher and package views for the caller.
type WalletFacade interface {
	PointsBalance(ctx context.Context, userID int64) (int64, error)
	PointsHistory(ctx context.Context, userID int64) ([]model.PointsLogEntry, error)
	UserPackages(ctx context.Context, userID int64) ([]model.UserPackage, error)
	UserVouchers(ctx context.Context, userID int64) ([]model.UserVoucher, error)
	PurchasePackage(ctx context.Context, userID, packageID int64) (*model.Payment, error)
}

// CatalogFacade serves the public read side of the shop.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Packages(ctx context.Context) ([]model.Package, error)
}

// PhotoFacade manages order photo galleries.
type PhotoFacade interface {
	Photos(ctx context.Context, orderID, requesterID int64, role model.Role) ([]model.OrderPhoto, error)
	AddPhoto(ctx context.Context, orderID, requesterID int64, role model.Role, url string) (*model.OrderPhoto, error)
	RemovePhoto(ctx context.Context, orderID, photoID, requesterID int64, role model.Role) error
	ReorderPhotos(ctx context.Context, orderID, requesterID int64, role model.Role, photoIDs []int64) error
}

// StringingFacade aggregates the full set of operations used across handlers.
type StringingFacade interface {
	AuthFacade
	OrderFacade
	AdminFacade
	WalletFacade
	CatalogFacade
	PhotoFacade
}

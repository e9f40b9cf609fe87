package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Inventory() InventoryRepository
	Orders() OrderRepository
	Packages() PackageRepository
	Vouchers() VoucherRepository
	Payments() PaymentRepository
	Points() PointsRepository
	Photos() PhotoRepository
	Fulfillment() FulfillmentRepository
}

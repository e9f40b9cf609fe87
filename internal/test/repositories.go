package test

import (
	"context"
	"time"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users  map[string]*model.User
	ByID   map[int64]*model.User
	ByCode map[string]*model.User
	Next   int64
	Err    error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users:  make(map[string]*model.User),
		ByID:   make(map[int64]*model.User),
		ByCode: make(map[string]*model.User),
		Next:   1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role, referralCode string, referredBy *int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           s.Next,
		Login:        login,
		PasswordHash: passwordHash,
		Role:         role,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
	}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	s.ByCode[referralCode] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// GetByReferralCode fetches user by referral code or returns not found.
func (s *UserRepositoryStub) GetByReferralCode(ctx context.Context, code string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByCode[code]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// ProductRepositoryStub serves a fixed catalog.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Err      error
}

func NewProductRepositoryStub(products ...model.Product) *ProductRepositoryStub {
	stub := &ProductRepositoryStub{Products: make(map[int64]*model.Product)}
	for i := range products {
		p := products[i]
		stub.Products[p.ID] = &p
	}
	return stub
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrProductNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		out = append(out, *p)
	}
	return out, nil
}

// InventoryRepositoryStub tracks stock levels and adjustment calls.
type InventoryRepositoryStub struct {
	Levels    map[int64]*model.StockLevel
	AdjustFn  func(context.Context, int64, int, model.StockReason, *int64, *int64) (*model.StockLogEntry, error)
	Adjusted  []StockAdjustCall
	LogsFn    func(context.Context, int64) ([]model.StockLogEntry, error)
	ListLowFn func(context.Context) ([]model.StockLevel, error)
	Err       error
}

// StockAdjustCall records one AdjustStock invocation.
type StockAdjustCall struct {
	ProductID int64
	Delta     int
	Reason    model.StockReason
}

func NewInventoryRepositoryStub() *InventoryRepositoryStub {
	return &InventoryRepositoryStub{Levels: make(map[int64]*model.StockLevel)}
}

func (s *InventoryRepositoryStub) Level(ctx context.Context, productID int64) (*model.StockLevel, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if level, ok := s.Levels[productID]; ok {
		return level, nil
	}
	return nil, domainErrors.ErrProductNotFound
}

func (s *InventoryRepositoryStub) AdjustStock(ctx context.Context, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error) {
	s.Adjusted = append(s.Adjusted, StockAdjustCall{ProductID: productID, Delta: delta, Reason: reason})
	if s.AdjustFn != nil {
		return s.AdjustFn(ctx, productID, delta, reason, referenceOrderID, actorID)
	}
	level, ok := s.Levels[productID]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	if level.Quantity+delta < 0 {
		return nil, domainErrors.ErrInsufficientStock
	}
	level.Quantity += delta
	return &model.StockLogEntry{ProductID: productID, Delta: delta, Reason: reason, ReferenceOrderID: referenceOrderID, ActorID: actorID}, nil
}

func (s *InventoryRepositoryStub) Logs(ctx context.Context, productID int64) ([]model.StockLogEntry, error) {
	if s.LogsFn != nil {
		return s.LogsFn(ctx, productID)
	}
	return nil, nil
}

func (s *InventoryRepositoryStub) ListLow(ctx context.Context) ([]model.StockLevel, error) {
	if s.ListLowFn != nil {
		return s.ListLowFn(ctx)
	}
	return nil, nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	GetByIDFn         func(context.Context, int64) (*model.Order, error)
	ListByUserFn      func(context.Context, int64) ([]model.Order, error)
	CountPriorFn      func(context.Context, int64) (int, error)
	CountCompletedFn  func(context.Context, int64) (int, error)
	UpdateStatusFn    func(context.Context, int64, model.OrderStatus, model.OrderStatus, string, time.Time) (*model.Order, error)
	QueuePositionFn   func(context.Context, int64) (int, error)
	CountUnresolvedFn func(context.Context) (int, error)

	Orders      []model.Order
	UpdateCalls []OrderUpdateCall
}

// OrderUpdateCall stores information about UpdateStatus invocations.
type OrderUpdateCall struct {
	OrderID int64
	From    model.OrderStatus
	To      model.OrderStatus
	Notes   string
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var out []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *OrderRepositoryStub) CountPrior(ctx context.Context, userID int64) (int, error) {
	if s.CountPriorFn != nil {
		return s.CountPriorFn(ctx, userID)
	}
	count := 0
	for _, o := range s.Orders {
		if o.UserID == userID && (o.Status == model.OrderStatusInProgress || o.Status == model.OrderStatusCompleted) {
			count++
		}
	}
	return count, nil
}

func (s *OrderRepositoryStub) CountCompleted(ctx context.Context, userID int64) (int, error) {
	if s.CountCompletedFn != nil {
		return s.CountCompletedFn(ctx, userID)
	}
	count := 0
	for _, o := range s.Orders {
		if o.UserID == userID && o.Status == model.OrderStatusCompleted {
			count++
		}
	}
	return count, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, notes string, now time.Time) (*model.Order, error) {
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, From: from, To: to, Notes: notes})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to, notes, now)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID && s.Orders[i].Status == from {
			s.Orders[i].Status = to
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) QueuePosition(ctx context.Context, orderID int64) (int, error) {
	if s.QueuePositionFn != nil {
		return s.QueuePositionFn(ctx, orderID)
	}
	return 1, nil
}

func (s *OrderRepositoryStub) CountUnresolved(ctx context.Context) (int, error) {
	if s.CountUnresolvedFn != nil {
		return s.CountUnresolvedFn(ctx)
	}
	count := 0
	for _, o := range s.Orders {
		if !o.Status.Terminal() {
			count++
		}
	}
	return count, nil
}

// PackageRepositoryStub serves catalog bundles and user instances.
type PackageRepositoryStub struct {
	Catalog       map[int64]*model.Package
	UserPackages  map[int64]*model.UserPackage
	GrantFn       func(context.Context, int64, *model.Package, string, time.Time) (*model.UserPackage, error)
	GrantedCalls  []string
	ListByUserErr error
	Err           error
}

func NewPackageRepositoryStub() *PackageRepositoryStub {
	return &PackageRepositoryStub{
		Catalog:      make(map[int64]*model.Package),
		UserPackages: make(map[int64]*model.UserPackage),
	}
}

func (s *PackageRepositoryStub) Get(ctx context.Context, id int64) (*model.Package, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Catalog[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrPackageNotFound
}

func (s *PackageRepositoryStub) List(ctx context.Context) ([]model.Package, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Package, 0, len(s.Catalog))
	for _, p := range s.Catalog {
		out = append(out, *p)
	}
	return out, nil
}

func (s *PackageRepositoryStub) GetUserPackage(ctx context.Context, id int64) (*model.UserPackage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.UserPackages[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrPackageNotFound
}

func (s *PackageRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.UserPackage, error) {
	if s.ListByUserErr != nil {
		return nil, s.ListByUserErr
	}
	var out []model.UserPackage
	for _, p := range s.UserPackages {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *PackageRepositoryStub) Grant(ctx context.Context, userID int64, pkg *model.Package, grantKey string, now time.Time) (*model.UserPackage, error) {
	s.GrantedCalls = append(s.GrantedCalls, grantKey)
	if s.GrantFn != nil {
		return s.GrantFn(ctx, userID, pkg, grantKey, now)
	}
	granted := &model.UserPackage{
		ID:           int64(len(s.UserPackages) + 1),
		UserID:       userID,
		PackageID:    pkg.ID,
		Remaining:    pkg.Uses,
		OriginalUses: pkg.Uses,
		Status:       model.UserPackageStatusActive,
		ExpiresAt:    now.AddDate(0, 0, pkg.ValidityDays),
	}
	s.UserPackages[granted.ID] = granted
	return granted, nil
}

// VoucherRepositoryStub serves voucher instances.
type VoucherRepositoryStub struct {
	UserVouchers   map[int64]*model.UserVoucher
	IssueFn        func(context.Context, int64, int64) (*model.UserVoucher, error)
	IssueWelcomeFn func(context.Context, int64) ([]model.UserVoucher, error)
	WelcomeIssued  []int64
	Err            error
}

func NewVoucherRepositoryStub() *VoucherRepositoryStub {
	return &VoucherRepositoryStub{UserVouchers: make(map[int64]*model.UserVoucher)}
}

func (s *VoucherRepositoryStub) GetUserVoucher(ctx context.Context, id int64) (*model.UserVoucher, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if v, ok := s.UserVouchers[id]; ok {
		return v, nil
	}
	return nil, domainErrors.ErrVoucherNotFound
}

func (s *VoucherRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.UserVoucher, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.UserVoucher
	for _, v := range s.UserVouchers {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *VoucherRepositoryStub) Issue(ctx context.Context, userID, voucherID int64) (*model.UserVoucher, error) {
	if s.IssueFn != nil {
		return s.IssueFn(ctx, userID, voucherID)
	}
	return &model.UserVoucher{UserID: userID, VoucherID: voucherID, Status: model.UserVoucherStatusActive}, nil
}

func (s *VoucherRepositoryStub) IssueWelcome(ctx context.Context, userID int64) ([]model.UserVoucher, error) {
	s.WelcomeIssued = append(s.WelcomeIssued, userID)
	if s.IssueWelcomeFn != nil {
		return s.IssueWelcomeFn(ctx, userID)
	}
	return nil, nil
}

// PaymentRepositoryStub serves payment records.
type PaymentRepositoryStub struct {
	Payments           map[int64]*model.Payment
	CreateForPackageFn func(context.Context, int64, int64, float64, string) (*model.Payment, error)
	LatestFn           func(context.Context, int64) (*model.Payment, error)
	Err                error
}

func NewPaymentRepositoryStub() *PaymentRepositoryStub {
	return &PaymentRepositoryStub{Payments: make(map[int64]*model.Payment)}
}

func (s *PaymentRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Payments[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrPaymentNotFound
}

func (s *PaymentRepositoryStub) CreateForPackage(ctx context.Context, userID, packageID int64, amount float64, provider string) (*model.Payment, error) {
	if s.CreateForPackageFn != nil {
		return s.CreateForPackageFn(ctx, userID, packageID, amount, provider)
	}
	payment := &model.Payment{
		ID:        int64(len(s.Payments) + 1),
		PackageID: &packageID,
		UserID:    userID,
		Amount:    amount,
		Provider:  provider,
		Status:    model.PaymentStatusPending,
	}
	s.Payments[payment.ID] = payment
	return payment, nil
}

func (s *PaymentRepositoryStub) LatestSuccessfulByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	if s.LatestFn != nil {
		return s.LatestFn(ctx, orderID)
	}
	return nil, domainErrors.ErrPaymentNotFound
}

// PointsRepositoryStub keeps an in-memory loyalty ledger.
type PointsRepositoryStub struct {
	Balances  map[int64]int64
	Entries   []model.PointsLogEntry
	AppendFn  func(context.Context, int64, int64, model.PointsReason, *int64) (*model.PointsLogEntry, error)
	BalanceFn func(context.Context, int64) (int64, error)
	HistoryFn func(context.Context, int64) ([]model.PointsLogEntry, error)
}

func NewPointsRepositoryStub() *PointsRepositoryStub {
	return &PointsRepositoryStub{Balances: make(map[int64]int64)}
}

func (s *PointsRepositoryStub) Append(ctx context.Context, userID int64, amount int64, reason model.PointsReason, referenceOrderID *int64) (*model.PointsLogEntry, error) {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, userID, amount, reason, referenceOrderID)
	}
	s.Balances[userID] += amount
	entry := model.PointsLogEntry{
		ID:               int64(len(s.Entries) + 1),
		UserID:           userID,
		Amount:           amount,
		Reason:           reason,
		ReferenceOrderID: referenceOrderID,
		BalanceAfter:     s.Balances[userID],
	}
	s.Entries = append(s.Entries, entry)
	return &entry, nil
}

func (s *PointsRepositoryStub) Balance(ctx context.Context, userID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return s.Balances[userID], nil
}

func (s *PointsRepositoryStub) History(ctx context.Context, userID int64) ([]model.PointsLogEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	var out []model.PointsLogEntry
	for i := len(s.Entries) - 1; i >= 0; i-- {
		if s.Entries[i].UserID == userID {
			out = append(out, s.Entries[i])
		}
	}
	return out, nil
}

// PhotoRepositoryStub keeps gallery entries in memory.
type PhotoRepositoryStub struct {
	Photos    []model.OrderPhoto
	AddFn     func(context.Context, int64, string) (*model.OrderPhoto, error)
	RemoveFn  func(context.Context, int64, int64) error
	ReorderFn func(context.Context, int64, []int64) error
}

func (s *PhotoRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderPhoto, error) {
	var out []model.OrderPhoto
	for _, p := range s.Photos {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PhotoRepositoryStub) Add(ctx context.Context, orderID int64, url string) (*model.OrderPhoto, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, orderID, url)
	}
	photo := model.OrderPhoto{ID: int64(len(s.Photos) + 1), OrderID: orderID, URL: url, DisplayOrder: len(s.Photos)}
	s.Photos = append(s.Photos, photo)
	return &photo, nil
}

func (s *PhotoRepositoryStub) Remove(ctx context.Context, orderID, photoID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, orderID, photoID)
	}
	for i, p := range s.Photos {
		if p.OrderID == orderID && p.ID == photoID {
			s.Photos = append(s.Photos[:i], s.Photos[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrPhotoNotFound
}

func (s *PhotoRepositoryStub) Reorder(ctx context.Context, orderID int64, photoIDs []int64) error {
	if s.ReorderFn != nil {
		return s.ReorderFn(ctx, orderID, photoIDs)
	}
	return nil
}

// FulfillmentRepositoryStub records atomic commit requests.
type FulfillmentRepositoryStub struct {
	CreateOrderFn    func(context.Context, repository.OrderDraft, time.Time) (*model.Order, error)
	CompleteOrderFn  func(context.Context, int64, int, int64, int64, string, time.Time) (*repository.CompletionResult, error)
	ConfirmPaymentFn func(context.Context, int64, int64, string, string, time.Time) (*model.Payment, error)
	CancelExpiredFn  func(context.Context, time.Time, time.Time) ([]model.Order, error)

	Drafts      []repository.OrderDraft
	Completions []CompletionCall
	Confirms    []ConfirmCall
}

// CompletionCall records one CompleteOrder invocation.
type CompletionCall struct {
	OrderID   int64
	Deduction int
	Points    int64
	AdminID   int64
}

// ConfirmCall records one ConfirmPayment invocation.
type ConfirmCall struct {
	PaymentID int64
	TxnRef    string
	GrantKey  string
}

func (s *FulfillmentRepositoryStub) CreateOrder(ctx context.Context, draft repository.OrderDraft, now time.Time) (*model.Order, error) {
	s.Drafts = append(s.Drafts, draft)
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, draft, now)
	}
	return &model.Order{
		ID:            1,
		UserID:        draft.UserID,
		ProductID:     draft.ProductID,
		Tension:       draft.Tension,
		Price:         draft.Price,
		Cost:          draft.Cost,
		Discount:      draft.Discount,
		Status:        draft.Status,
		UserPackageID: draft.UserPackageID,
		UserVoucherID: draft.UserVoucherID,
		Notes:         draft.Notes,
		CreatedAt:     now,
	}, nil
}

func (s *FulfillmentRepositoryStub) CompleteOrder(ctx context.Context, orderID int64, deduction int, points int64, adminID int64, notes string, now time.Time) (*repository.CompletionResult, error) {
	s.Completions = append(s.Completions, CompletionCall{OrderID: orderID, Deduction: deduction, Points: points, AdminID: adminID})
	if s.CompleteOrderFn != nil {
		return s.CompleteOrderFn(ctx, orderID, deduction, points, adminID, notes, now)
	}
	completed := now
	return &repository.CompletionResult{
		Order:         &model.Order{ID: orderID, Status: model.OrderStatusCompleted, CompletedAt: &completed},
		PointsGranted: points,
		StockDeducted: deduction,
	}, nil
}

func (s *FulfillmentRepositoryStub) ConfirmPayment(ctx context.Context, paymentID, adminID int64, txnRef, grantKey string, now time.Time) (*model.Payment, error) {
	s.Confirms = append(s.Confirms, ConfirmCall{PaymentID: paymentID, TxnRef: txnRef, GrantKey: grantKey})
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, paymentID, adminID, txnRef, grantKey, now)
	}
	confirmed := now
	return &model.Payment{ID: paymentID, Status: model.PaymentStatusSuccess, TxnRef: txnRef, ConfirmedAt: &confirmed}, nil
}

func (s *FulfillmentRepositoryStub) CancelExpired(ctx context.Context, cutoff, now time.Time) ([]model.Order, error) {
	if s.CancelExpiredFn != nil {
		return s.CancelExpiredFn(ctx, cutoff, now)
	}
	return nil, nil
}

// FactoryStub aggregates repository stubs behind the Factory interface.
type FactoryStub struct {
	UsersRepo       *UserRepositoryStub
	ProductsRepo    *ProductRepositoryStub
	InventoryRepo   *InventoryRepositoryStub
	OrdersRepo      *OrderRepositoryStub
	PackagesRepo    *PackageRepositoryStub
	VouchersRepo    *VoucherRepositoryStub
	PaymentsRepo    *PaymentRepositoryStub
	PointsRepo      *PointsRepositoryStub
	PhotosRepo      *PhotoRepositoryStub
	FulfillmentRepo *FulfillmentRepositoryStub
}

// NewFactoryStub constructs a factory with every stub initialized.
func NewFactoryStub() *FactoryStub {
	return &FactoryStub{
		UsersRepo:       NewUserRepositoryStub(),
		ProductsRepo:    NewProductRepositoryStub(),
		InventoryRepo:   NewInventoryRepositoryStub(),
		OrdersRepo:      &OrderRepositoryStub{},
		PackagesRepo:    NewPackageRepositoryStub(),
		VouchersRepo:    NewVoucherRepositoryStub(),
		PaymentsRepo:    NewPaymentRepositoryStub(),
		PointsRepo:      NewPointsRepositoryStub(),
		PhotosRepo:      &PhotoRepositoryStub{},
		FulfillmentRepo: &FulfillmentRepositoryStub{},
	}
}

func (f *FactoryStub) Users() repository.UserRepository              { return f.UsersRepo }
func (f *FactoryStub) Products() repository.ProductRepository        { return f.ProductsRepo }
func (f *FactoryStub) Inventory() repository.InventoryRepository     { return f.InventoryRepo }
func (f *FactoryStub) Orders() repository.OrderRepository            { return f.OrdersRepo }
func (f *FactoryStub) Packages() repository.PackageRepository        { return f.PackagesRepo }
func (f *FactoryStub) Vouchers() repository.VoucherRepository        { return f.VouchersRepo }
func (f *FactoryStub) Payments() repository.PaymentRepository        { return f.PaymentsRepo }
func (f *FactoryStub) Points() repository.PointsRepository           { return f.PointsRepo }
func (f *FactoryStub) Photos() repository.PhotoRepository            { return f.PhotosRepo }
func (f *FactoryStub) Fulfillment() repository.FulfillmentRepository { return f.FulfillmentRepo }

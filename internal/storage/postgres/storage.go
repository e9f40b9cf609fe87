package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/strungco/stringmart/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage relies on, kept as an
// interface so tests can substitute a mock pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL. Every
// multi-entity commit of the fulfillment engine runs inside a single
// transaction here; the database's isolation is the only concurrency
// control in the system.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

// newPgxPool is swapped in tests for a mock pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (DBPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository              { return &userRepository{storage: s} }
func (s *Storage) Products() repository.ProductRepository        { return &productRepository{storage: s} }
func (s *Storage) Inventory() repository.InventoryRepository     { return &inventoryRepository{storage: s} }
func (s *Storage) Orders() repository.OrderRepository            { return &orderRepository{storage: s} }
func (s *Storage) Packages() repository.PackageRepository        { return &packageRepository{storage: s} }
func (s *Storage) Vouchers() repository.VoucherRepository        { return &voucherRepository{storage: s} }
func (s *Storage) Payments() repository.PaymentRepository        { return &paymentRepository{storage: s} }
func (s *Storage) Points() repository.PointsRepository           { return &pointsRepository{storage: s} }
func (s *Storage) Photos() repository.PhotoRepository            { return &photoRepository{storage: s} }
func (s *Storage) Fulfillment() repository.FulfillmentRepository { return &fulfillmentRepository{storage: s} }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            referral_code TEXT UNIQUE NOT NULL,
            referred_by BIGINT REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            cost DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS stock_levels (
            product_id BIGINT PRIMARY KEY REFERENCES products(id),
            quantity INT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
            minimum_threshold INT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS stock_logs (
            id SERIAL PRIMARY KEY,
            product_id BIGINT NOT NULL REFERENCES products(id),
            delta INT NOT NULL,
            reason TEXT NOT NULL,
            reference_order_id BIGINT,
            actor_id BIGINT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS packages (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            uses INT NOT NULL,
            validity_days INT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS user_packages (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            package_id BIGINT NOT NULL REFERENCES packages(id),
            remaining INT NOT NULL CHECK (remaining >= 0),
            original_uses INT NOT NULL,
            status TEXT NOT NULL DEFAULT 'active',
            expires_at TIMESTAMPTZ NOT NULL,
            grant_key TEXT UNIQUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS vouchers (
            id SERIAL PRIMARY KEY,
            code TEXT UNIQUE NOT NULL,
            type TEXT NOT NULL,
            value DOUBLE PRECISION NOT NULL,
            min_purchase DOUBLE PRECISION NOT NULL DEFAULT 0,
            valid_from TIMESTAMPTZ NOT NULL,
            valid_until TIMESTAMPTZ NOT NULL,
            usage_cap INT,
            used_count INT NOT NULL DEFAULT 0,
            first_order_only BOOLEAN NOT NULL DEFAULT FALSE,
            welcome BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS user_vouchers (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            voucher_id BIGINT NOT NULL REFERENCES vouchers(id),
            status TEXT NOT NULL DEFAULT 'active',
            used_at TIMESTAMPTZ,
            order_id BIGINT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            tension INT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            cost DOUBLE PRECISION NOT NULL,
            discount DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (price - discount >= 0),
            status TEXT NOT NULL,
            user_package_id BIGINT REFERENCES user_packages(id),
            user_voucher_id BIGINT REFERENCES user_vouchers(id),
            notes TEXT NOT NULL DEFAULT '',
            profit DOUBLE PRECISION,
            completed_at TIMESTAMPTZ,
            estimated_completion_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            order_id BIGINT REFERENCES orders(id),
            package_id BIGINT REFERENCES packages(id),
            user_id BIGINT NOT NULL REFERENCES users(id),
            amount DOUBLE PRECISION NOT NULL,
            provider TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            txn_ref TEXT NOT NULL DEFAULT '',
            confirm_key TEXT UNIQUE,
            confirmed_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS point_balances (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            balance BIGINT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS points_log (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            amount BIGINT NOT NULL,
            reason TEXT NOT NULL,
            reference_order_id BIGINT,
            balance_after BIGINT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_photos (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            url TEXT NOT NULL,
            display_order INT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_logs_product ON stock_logs(product_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_points_log_user ON points_log(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_photos_order ON order_photos(order_id, display_order)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

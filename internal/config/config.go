package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	NotifierAddress string
	JWTSecret       string
	PaymentProvider string

	SweepInterval   time.Duration
	PendingOrderTTL time.Duration
	ShutdownTimeout time.Duration
	WorkerPoolSize  int

	TensionMin             int
	TensionMax             int
	StockDeductionPerOrder int

	OrdersPerDay   int
	MaxQueueDays   int
	ProcessingDays int
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultPaymentProvider = "counter"
	defaultSweepInterval   = 10 * time.Minute
	defaultPendingOrderTTL = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultWorkerPoolSize  = 4

	defaultTensionMin     = 15
	defaultTensionMax     = 35
	defaultStockDeduction = 1

	defaultOrdersPerDay   = 5
	defaultMaxQueueDays   = 7
	defaultProcessingDays = 2
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:             getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:            getString(lookup, "DATABASE_URI", ""),
		NotifierAddress:        getString(lookup, "NOTIFIER_ADDRESS", ""),
		JWTSecret:              getString(lookup, "JWT_SECRET", defaultJWTSecret),
		PaymentProvider:        getString(lookup, "PAYMENT_PROVIDER", defaultPaymentProvider),
		SweepInterval:          getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		PendingOrderTTL:        getDuration(lookup, "PENDING_ORDER_TTL", defaultPendingOrderTTL),
		ShutdownTimeout:        getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		WorkerPoolSize:         getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		TensionMin:             getInt(lookup, "TENSION_MIN", defaultTensionMin),
		TensionMax:             getInt(lookup, "TENSION_MAX", defaultTensionMax),
		StockDeductionPerOrder: getInt(lookup, "STOCK_DEDUCTION_PER_ORDER", defaultStockDeduction),
		OrdersPerDay:           getInt(lookup, "ORDERS_PER_DAY", defaultOrdersPerDay),
		MaxQueueDays:           getInt(lookup, "MAX_QUEUE_DAYS", defaultMaxQueueDays),
		ProcessingDays:         getInt(lookup, "PROCESSING_DAYS", defaultProcessingDays),
	}

	fs := flag.NewFlagSet("stringmart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sweepIntervalStr   = cfg.SweepInterval.String()
		pendingTTLStr      = cfg.PendingOrderTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.NotifierAddress, "n", cfg.NotifierAddress, "Notification sink base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between expiry sweeps")
	fs.StringVar(&pendingTTLStr, "pending-ttl", pendingTTLStr, "Age after which unpaid orders are cancelled")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent notification workers")
	fs.IntVar(&cfg.TensionMin, "tension-min", cfg.TensionMin, "Lowest accepted string tension")
	fs.IntVar(&cfg.TensionMax, "tension-max", cfg.TensionMax, "Highest accepted string tension")
	fs.IntVar(&cfg.OrdersPerDay, "orders-per-day", cfg.OrdersPerDay, "Stringing throughput used for queue estimates")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.PendingOrderTTL, err = time.ParseDuration(pendingTTLStr); err != nil {
		return nil, fmt.Errorf("invalid pending order ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.PendingOrderTTL <= 0 {
		cfg.PendingOrderTTL = defaultPendingOrderTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.StockDeductionPerOrder <= 0 {
		cfg.StockDeductionPerOrder = defaultStockDeduction
	}

	if cfg.OrdersPerDay <= 0 {
		cfg.OrdersPerDay = defaultOrdersPerDay
	}

	if cfg.MaxQueueDays <= 0 {
		cfg.MaxQueueDays = defaultMaxQueueDays
	}

	if cfg.ProcessingDays <= 0 {
		cfg.ProcessingDays = defaultProcessingDays
	}

	if cfg.TensionMin <= 0 || cfg.TensionMax < cfg.TensionMin {
		return nil, fmt.Errorf("invalid tension range [%d, %d]", cfg.TensionMin, cfg.TensionMax)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

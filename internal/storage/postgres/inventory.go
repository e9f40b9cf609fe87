package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

type productRepository struct {
	storage *Storage
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, price, cost, created_at FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Cost, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, price, cost, created_at FROM products ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Cost, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type inventoryRepository struct {
	storage *Storage
}

func (r *inventoryRepository) Level(ctx context.Context, productID int64) (*model.StockLevel, error) {
	const query = `SELECT product_id, quantity, minimum_threshold FROM stock_levels WHERE product_id=$1`
	var lvl model.StockLevel
	err := r.storage.pool.QueryRow(ctx, query, productID).Scan(&lvl.ProductID, &lvl.Quantity, &lvl.MinimumThreshold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return &lvl, nil
}

// AdjustStock collapses availability check and mutation into one
// conditional UPDATE so concurrent adjustments can never drive the
// quantity negative, and writes the ledger entry in the same transaction.
func (r *inventoryRepository) AdjustStock(ctx context.Context, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error) {
	var entry model.StockLogEntry
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		e, err := adjustStockTx(ctx, tx, productID, delta, reason, referenceOrderID, actorID)
		if err != nil {
			return err
		}
		entry = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func adjustStockTx(ctx context.Context, tx pgx.Tx, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error) {
	const update = `UPDATE stock_levels SET quantity = quantity + $2
                    WHERE product_id=$1 AND quantity + $2 >= 0
                    RETURNING quantity`
	var quantity int
	if err := tx.QueryRow(ctx, update, productID, delta).Scan(&quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			const exists = `SELECT 1 FROM stock_levels WHERE product_id=$1`
			var one int
			if lookupErr := tx.QueryRow(ctx, exists, productID).Scan(&one); lookupErr != nil {
				if errors.Is(lookupErr, pgx.ErrNoRows) {
					return nil, domainErrors.ErrProductNotFound
				}
				return nil, lookupErr
			}
			return nil, domainErrors.ErrInsufficientStock
		}
		return nil, err
	}

	const insertLog = `INSERT INTO stock_logs (product_id, delta, reason, reference_order_id, actor_id)
                       VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	entry := model.StockLogEntry{ProductID: productID, Delta: delta, Reason: reason, ReferenceOrderID: referenceOrderID, ActorID: actorID}
	if err := tx.QueryRow(ctx, insertLog, productID, delta, reason, referenceOrderID, actorID).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *inventoryRepository) Logs(ctx context.Context, productID int64) ([]model.StockLogEntry, error) {
	const query = `SELECT id, product_id, delta, reason, reference_order_id, actor_id, created_at
                   FROM stock_logs WHERE product_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StockLogEntry
	for rows.Next() {
		var e model.StockLogEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Delta, &e.Reason, &e.ReferenceOrderID, &e.ActorID, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *inventoryRepository) ListLow(ctx context.Context) ([]model.StockLevel, error) {
	const query = `SELECT product_id, quantity, minimum_threshold
                   FROM stock_levels WHERE quantity <= minimum_threshold ORDER BY product_id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StockLevel
	for rows.Next() {
		var lvl model.StockLevel
		if err := rows.Scan(&lvl.ProductID, &lvl.Quantity, &lvl.MinimumThreshold); err != nil {
			return nil, err
		}
		result = append(result, lvl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

type photoRepository struct {
	storage *Storage
}

func (r *photoRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderPhoto, error) {
	const query = `SELECT id, order_id, url, display_order, created_at
                   FROM order_photos WHERE order_id=$1 ORDER BY display_order`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderPhoto
	for rows.Next() {
		var p model.OrderPhoto
		if err := rows.Scan(&p.ID, &p.OrderID, &p.URL, &p.DisplayOrder, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *photoRepository) Add(ctx context.Context, orderID int64, url string) (*model.OrderPhoto, error) {
	const query = `INSERT INTO order_photos (order_id, url, display_order)
                   VALUES ($1, $2, (SELECT COALESCE(MAX(display_order) + 1, 0) FROM order_photos WHERE order_id=$1))
                   RETURNING id, display_order, created_at`
	p := model.OrderPhoto{OrderID: orderID, URL: url}
	if err := r.storage.pool.QueryRow(ctx, query, orderID, url).Scan(&p.ID, &p.DisplayOrder, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Remove deletes the photo and renumbers the remaining ones so display
// positions stay contiguous.
func (r *photoRepository) Remove(ctx context.Context, orderID, photoID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM order_photos WHERE id=$1 AND order_id=$2`, photoID, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrPhotoNotFound
		}

		const renumber = `UPDATE order_photos op
                          SET display_order = ranked.pos
                          FROM (SELECT id, ROW_NUMBER() OVER (ORDER BY display_order) - 1 AS pos
                                FROM order_photos WHERE order_id=$1) ranked
                          WHERE op.id = ranked.id AND op.display_order <> ranked.pos`
		_, err = tx.Exec(ctx, renumber, orderID)
		return err
	})
}

// Reorder rewrites every display position to match the given id order.
// The id set must cover the collection exactly.
func (r *photoRepository) Reorder(ctx context.Context, orderID int64, photoIDs []int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM order_photos WHERE order_id=$1`, orderID).Scan(&count); err != nil {
			return err
		}
		if count != len(photoIDs) {
			return domainErrors.Validation(fmt.Sprintf("reorder must list all %d photos", count))
		}

		for pos, id := range photoIDs {
			tag, err := tx.Exec(ctx, `UPDATE order_photos SET display_order=$3 WHERE id=$1 AND order_id=$2`, id, orderID, pos)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrPhotoNotFound
			}
		}
		return nil
	})
}

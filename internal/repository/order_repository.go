package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"

	"cart-service/internal/entity"
	"cart-service/internal/sharding"
)

// OrderWriter inserts rows and returns them as stored, including generated ids.
type OrderWriter interface {
	InsertOrders(ctx context.Context, orders []entity.Order) ([]entity.Order, error)
	InsertOrderDetails(ctx context.Context, details []entity.OrderDetail) ([]entity.OrderDetail, error)
}

// IDGenerator issues order ids. Every shard draws from the same generator, so
// an order id identifies one order across all shards.
type IDGenerator interface {
	Generate() snowflake.ID
}

type OrderRepository struct {
	dbShards []*sql.DB
	router   *sharding.ShardRouter
	ids      IDGenerator
}

func NewOrderRepository(dbShards []*sql.DB, router *sharding.ShardRouter, ids IDGenerator) *OrderRepository {
	return &OrderRepository{dbShards, router, ids}
}

// WithTx runs fn inside one transaction on the shard owning userID. The
// transaction is committed only if fn returns nil; fn's error is returned as is.
func (r *OrderRepository) WithTx(ctx context.Context, userID string, fn func(w OrderWriter) error) error {
	db := r.dbShards[r.router.GetShard(userID)]

	// Start a transaction
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&orderWriter{db: tx, ids: r.ids}); err != nil {
		tx.Rollback()
		return err
	}

	// Commit the transaction
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type orderWriter struct {
	db  dbtx
	ids IDGenerator
}

func (w *orderWriter) InsertOrders(ctx context.Context, orders []entity.Order) ([]entity.Order, error) {
	orderQuery := `INSERT INTO orders (order_id, user_id) VALUES (?, ?)`
	selectQuery := `SELECT order_id, user_id, created_at FROM orders WHERE order_id = ?`

	created := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		orderID := w.ids.Generate().Int64()
		res, err := w.db.ExecContext(ctx, orderQuery, orderID, order.UserID)
		if err != nil {
			return nil, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			continue
		}

		// Read the row back so callers only see what the store holds
		var stored entity.Order
		err = w.db.QueryRowContext(ctx, selectQuery, orderID).Scan(&stored.OrderID, &stored.UserID, &stored.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}
		created = append(created, stored)
	}

	return created, nil
}

func (w *orderWriter) InsertOrderDetails(ctx context.Context, details []entity.OrderDetail) ([]entity.OrderDetail, error) {
	if len(details) == 0 {
		return []entity.OrderDetail{}, nil
	}

	// Insert order details with batch
	detailQuery := `
		INSERT INTO orderdetails (order_id, service_id, service_lists, quantity_per_order, order_date, time, ad_detail, ad_subdistrict, ad_district, ad_province, ad_moredetail, total_amount)
		VALUES `

	var values []interface{}
	orderIDs := []int64{}
	seen := map[int64]bool{}
	for _, d := range details {
		detailQuery += "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?),"
		values = append(values, d.OrderID, d.ServiceID, d.ServiceLists, d.QuantityPerOrder, d.OrderDate, d.Time,
			d.AdDetail, d.AdSubdistrict, d.AdDistrict, d.AdProvince, d.AdMoreDetail, d.TotalAmount)
		if !seen[d.OrderID] {
			seen[d.OrderID] = true
			orderIDs = append(orderIDs, d.OrderID)
		}
	}

	// Remove the trailing comma
	detailQuery = detailQuery[:len(detailQuery)-1]

	if _, err := w.db.ExecContext(ctx, detailQuery, values...); err != nil {
		return nil, err
	}

	selectQuery := `SELECT order_detail_id, order_id, service_id, service_lists, quantity_per_order, order_date, time, ad_detail, ad_subdistrict, ad_district, ad_province, ad_moredetail, total_amount FROM orderdetails WHERE ` +
		inClause("order_id", len(orderIDs)) + ` ORDER BY order_detail_id`

	rows, err := w.db.QueryContext(ctx, selectQuery, int64Args(orderIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inserted := []entity.OrderDetail{}
	for rows.Next() {
		var d entity.OrderDetail
		err := rows.Scan(&d.OrderDetailID, &d.OrderID, &d.ServiceID, &d.ServiceLists, &d.QuantityPerOrder, &d.OrderDate, &d.Time,
			&d.AdDetail, &d.AdSubdistrict, &d.AdDistrict, &d.AdProvince, &d.AdMoreDetail, &d.TotalAmount)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, d)
	}

	return inserted, rows.Err()
}

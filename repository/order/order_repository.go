package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/constant"
	"github.com/marketsync/seller-hub/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	GetByExternalIDTx(ctx context.Context, tx *sqlx.Tx, sellerID uint64, externalOrderID string) (*model.Order, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Order, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (uint64, error)
	InsertItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, reserveStatus constant.ReserveStatus, lastError string) error
	InsertStatusHistoryTx(ctx context.Context, tx *sqlx.Tx, entry *model.OrderStatusHistoryEntry) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const orderColumns = "id, order_number, external_order_id, marketplace, seller_id, warehouse_id, channel, status, reserve_status, total, last_error, created_at, updated_at"

func (r *SQL) GetByExternalIDTx(ctx context.Context, tx *sqlx.Tx, sellerID uint64, externalOrderID string) (*model.Order, error) {
	var o model.Order
	q := "SELECT " + orderColumns + " FROM `order` WHERE seller_id = ? AND external_order_id = ?"
	if err := tx.GetContext(ctx, &o, q, sellerID, externalOrderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Order, error) {
	var o model.Order
	q := "SELECT " + orderColumns + " FROM `order` WHERE id = ?"
	if err := tx.GetContext(ctx, &o, q, orderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (uint64, error) {
	q := "INSERT INTO `order` (order_number, external_order_id, marketplace, seller_id, warehouse_id, channel, status, reserve_status, total, last_error) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	res, err := tx.ExecContext(ctx, q, order.OrderNumber, order.ExternalOrderID, order.Marketplace, order.SellerID,
		order.WarehouseID, order.Channel, order.Status, order.ReserveStatus, order.Total, order.LastError)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	q := "INSERT INTO order_item (order_id, product_id, article, name, price, quantity, total) VALUES (?, ?, ?, ?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, it.Article, it.Name, it.Price, it.Quantity, it.Total); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	q := "SELECT id, order_id, product_id, article, name, price, quantity, total FROM order_item WHERE order_id = ?"
	if err := tx.SelectContext(ctx, &items, q, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, reserveStatus constant.ReserveStatus, lastError string) error {
	q := "UPDATE `order` SET status = ?, reserve_status = ?, last_error = ? WHERE id = ?"
	_, err := tx.ExecContext(ctx, q, status, reserveStatus, lastError, orderID)
	return err
}

func (r *SQL) InsertStatusHistoryTx(ctx context.Context, tx *sqlx.Tx, entry *model.OrderStatusHistoryEntry) error {
	q := "INSERT INTO order_status_history (order_id, status, changed_by, comment) VALUES (?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q, entry.OrderID, entry.Status, entry.ChangedBy, entry.Comment)
	return err
}

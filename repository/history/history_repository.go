package history

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/model"
)

type HistoryRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, entry *model.InventoryHistoryEntry) error
	ListByProduct(ctx context.Context, sellerID, productID uint64, limit int) ([]model.InventoryHistoryEntry, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewHistoryRepository(conn *sqlx.DB) HistoryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, entry *model.InventoryHistoryEntry) error {
	q := "INSERT INTO inventory_history (seller_id, product_id, operation_type, quantity_change, reason, actor, order_id, shipment_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q, entry.SellerID, entry.ProductID, entry.OperationType, entry.QuantityChange, entry.Reason, entry.Actor, entry.OrderID, entry.ShipmentID)
	return err
}

func (r *SQL) ListByProduct(ctx context.Context, sellerID, productID uint64, limit int) ([]model.InventoryHistoryEntry, error) {
	entries := make([]model.InventoryHistoryEntry, 0)
	q := "SELECT id, seller_id, product_id, operation_type, quantity_change, reason, actor, order_id, shipment_id, created_at FROM inventory_history WHERE seller_id = ? AND product_id = ? ORDER BY id DESC LIMIT ?"
	if err := r.conn.SelectContext(ctx, &entries, q, sellerID, productID, limit); err != nil {
		return nil, err
	}
	return entries, nil
}

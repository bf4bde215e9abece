package synclog

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/model"
)

type SyncLogRepository interface {
	Insert(ctx context.Context, entry *model.StockSyncHistoryEntry) error
	ListByWarehouse(ctx context.Context, warehouseID uint64, limit int) ([]model.StockSyncHistoryEntry, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewSyncLogRepository(conn *sqlx.DB) SyncLogRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Insert(ctx context.Context, entry *model.StockSyncHistoryEntry) error {
	q := "INSERT INTO stock_sync_history (warehouse_id, marketplace, marketplace_warehouse_id, product_article, quantity_sent, status, error_message) VALUES (?, ?, ?, ?, ?, ?, ?)"
	_, err := r.conn.ExecContext(ctx, q, entry.WarehouseID, entry.Marketplace, entry.MarketplaceWarehouseID,
		entry.ProductArticle, entry.QuantitySent, entry.Status, entry.ErrorMessage)
	return err
}

func (r *SQL) ListByWarehouse(ctx context.Context, warehouseID uint64, limit int) ([]model.StockSyncHistoryEntry, error) {
	entries := make([]model.StockSyncHistoryEntry, 0)
	q := "SELECT id, warehouse_id, marketplace, marketplace_warehouse_id, product_article, quantity_sent, status, error_message, synced_at FROM stock_sync_history WHERE warehouse_id = ? ORDER BY id DESC LIMIT ?"
	if err := r.conn.SelectContext(ctx, &entries, q, warehouseID, limit); err != nil {
		return nil, err
	}
	return entries, nil
}

package warehouse

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/model"
)

type WarehouseRepository interface {
	GetByID(ctx context.Context, warehouseID uint64) (*model.Warehouse, error)
	ListBySeller(ctx context.Context, sellerID uint64, transferOnly bool) ([]model.Warehouse, error)
	GetLinks(ctx context.Context, warehouseID uint64) ([]model.WarehouseLink, error)
	GetByLink(ctx context.Context, sellerID uint64, marketplace, marketplaceWarehouseID string) (*model.Warehouse, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

const warehouseColumns = "id, seller_id, name, type, transfer_stock, use_for_orders, priority, return_on_cancel"

func (r *SQL) GetByID(ctx context.Context, warehouseID uint64) (*model.Warehouse, error) {
	var w model.Warehouse
	q := "SELECT " + warehouseColumns + " FROM warehouse WHERE id = ?"
	if err := r.conn.GetContext(ctx, &w, q, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) ListBySeller(ctx context.Context, sellerID uint64, transferOnly bool) ([]model.Warehouse, error) {
	warehouses := make([]model.Warehouse, 0)
	q := "SELECT " + warehouseColumns + " FROM warehouse WHERE seller_id = ?"
	args := []interface{}{sellerID}
	if transferOnly {
		q += " AND transfer_stock = TRUE"
	}
	q += " ORDER BY priority"
	if err := r.conn.SelectContext(ctx, &warehouses, q, args...); err != nil {
		return nil, err
	}
	return warehouses, nil
}

// GetByLink reverse-resolves a marketplace warehouse id to the seller's
// local warehouse through warehouse_link.
func (r *SQL) GetByLink(ctx context.Context, sellerID uint64, marketplace, marketplaceWarehouseID string) (*model.Warehouse, error) {
	var w model.Warehouse
	q := "SELECT w.id, w.seller_id, w.name, w.type, w.transfer_stock, w.use_for_orders, w.priority, w.return_on_cancel" +
		" FROM warehouse w JOIN warehouse_link l ON l.warehouse_id = w.id" +
		" WHERE w.seller_id = ? AND l.marketplace = ? AND l.marketplace_warehouse_id = ?" +
		" ORDER BY w.priority LIMIT 1"
	if err := r.conn.GetContext(ctx, &w, q, sellerID, marketplace, marketplaceWarehouseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) GetLinks(ctx context.Context, warehouseID uint64) ([]model.WarehouseLink, error) {
	links := make([]model.WarehouseLink, 0)
	q := "SELECT id, warehouse_id, marketplace, marketplace_warehouse_id FROM warehouse_link WHERE warehouse_id = ?"
	if err := r.conn.SelectContext(ctx, &links, q, warehouseID); err != nil {
		return nil, err
	}
	return links, nil
}

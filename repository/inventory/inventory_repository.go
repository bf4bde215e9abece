package inventory

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/model"
)

type InventoryRepository interface {
	GetBySellerProduct(ctx context.Context, sellerID, productID uint64) (*model.InventoryRecord, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.InventoryRecord, error)
	ReserveTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error
	DeductTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error
	ReturnTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error
	AddQuantityTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error
	SetQuantityTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, quantity int64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetBySellerProduct(ctx context.Context, sellerID, productID uint64) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	q := "SELECT id, seller_id, product_id, sku, quantity, reserved, available, updated_at FROM inventory WHERE seller_id = ? AND product_id = ?"
	if err := r.conn.GetContext(ctx, &rec, q, sellerID, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQL) ListBySeller(ctx context.Context, sellerID uint64) ([]model.InventoryRecord, error) {
	recs := make([]model.InventoryRecord, 0)
	q := "SELECT id, seller_id, product_id, sku, quantity, reserved, available, updated_at FROM inventory WHERE seller_id = ?"
	if err := r.conn.SelectContext(ctx, &recs, q, sellerID); err != nil {
		return nil, err
	}
	return recs, nil
}

// All mutations below are single relative UPDATE statements so concurrent
// writers on the same record cannot lose updates. MySQL evaluates SET
// assignments left to right, so `available = quantity - reserved` always
// sees the values just written. A missing record surfaces as
// sql.ErrNoRows via zero affected rows.

func (r *SQL) ReserveTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error {
	q := "UPDATE inventory SET reserved = reserved + ?, available = quantity - reserved WHERE seller_id = ? AND product_id = ?"
	return execOne(ctx, tx, q, qty, sellerID, productID)
}

func (r *SQL) DeductTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error {
	// reserved is clamped at zero so an unpaired deduction cannot drive
	// it negative.
	q := "UPDATE inventory SET quantity = quantity - ?, reserved = GREATEST(reserved - ?, 0), available = quantity - reserved WHERE seller_id = ? AND product_id = ?"
	return execOne(ctx, tx, q, qty, qty, sellerID, productID)
}

func (r *SQL) ReturnTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error {
	q := "UPDATE inventory SET reserved = GREATEST(reserved - ?, 0), available = quantity - reserved WHERE seller_id = ? AND product_id = ?"
	return execOne(ctx, tx, q, qty, sellerID, productID)
}

func (r *SQL) AddQuantityTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error {
	q := "UPDATE inventory SET quantity = quantity + ?, available = quantity - reserved WHERE seller_id = ? AND product_id = ?"
	return execOne(ctx, tx, q, qty, sellerID, productID)
}

func (r *SQL) SetQuantityTx(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, quantity int64) error {
	q := "UPDATE inventory SET quantity = ?, available = quantity - reserved WHERE seller_id = ? AND product_id = ?"
	return execOne(ctx, tx, q, quantity, sellerID, productID)
}

func execOne(ctx context.Context, tx *sqlx.Tx, query string, args ...interface{}) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

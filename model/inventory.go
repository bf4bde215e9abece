package model

import (
	"time"

	"github.com/marketsync/seller-hub/constant"
)

type InventoryRecord struct {
	ID        uint64    `db:"id"`
	SellerID  uint64    `db:"seller_id"`
	ProductID uint64    `db:"product_id"`
	SKU       string    `db:"sku"`
	Quantity  int64     `db:"quantity"`
	Reserved  int64     `db:"reserved"`
	Available int64     `db:"available"`
	UpdatedAt time.Time `db:"updated_at"`
}

// InventoryHistoryEntry is append-only; rows are never updated.
type InventoryHistoryEntry struct {
	ID             uint64                 `db:"id"`
	SellerID       uint64                 `db:"seller_id"`
	ProductID      uint64                 `db:"product_id"`
	OperationType  constant.OperationType `db:"operation_type"`
	QuantityChange int64                  `db:"quantity_change"`
	Reason         string                 `db:"reason"`
	Actor          string                 `db:"actor"`
	OrderID        *uint64                `db:"order_id"`
	ShipmentID     *uint64                `db:"shipment_id"`
	CreatedAt      time.Time              `db:"created_at"`
}

type ItemQuantity struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type LedgerRequest struct {
	SellerID uint64
	Items    []ItemQuantity `json:"items" validate:"required,dive,required"`
	Reason   string         `json:"reason"`
	Actor    string         `json:"actor"`
	OrderID  *uint64        `json:"order_id"`
}

type ManualSetRequest struct {
	SellerID    uint64
	ProductID   uint64 `json:"product_id" validate:"required"`
	NewQuantity int64  `json:"new_quantity"`
	Reason      string `json:"reason"`
	Actor       string `json:"actor"`
}

// LedgerResult reports per-item outcome of a ledger call. Skipped counts
// items whose inventory record was missing; they never abort siblings.
type LedgerResult struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

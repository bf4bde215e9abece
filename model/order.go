package model

import (
	"time"

	"github.com/marketsync/seller-hub/constant"
)

type Order struct {
	ID              uint64                 `db:"id"`
	OrderNumber     string                 `db:"order_number"`
	ExternalOrderID string                 `db:"external_order_id"`
	Marketplace     string                 `db:"marketplace"`
	SellerID        uint64                 `db:"seller_id"`
	WarehouseID     uint64                 `db:"warehouse_id"`
	Channel         constant.OrderChannel  `db:"channel"`
	Status          constant.OrderStatus   `db:"status"`
	ReserveStatus   constant.ReserveStatus `db:"reserve_status"`
	Total           float64                `db:"total"`
	LastError       string                 `db:"last_error"`
	CreatedAt       time.Time              `db:"created_at"`
	UpdatedAt       time.Time              `db:"updated_at"`

	Items []OrderItem `db:"-"`
}

type OrderItem struct {
	ID        uint64  `db:"id"`
	OrderID   uint64  `db:"order_id"`
	ProductID uint64  `db:"product_id"`
	Article   string  `db:"article"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Quantity  int64   `db:"quantity"`
	Total     float64 `db:"total"`
}

type OrderStatusHistoryEntry struct {
	ID        uint64               `db:"id"`
	OrderID   uint64               `db:"order_id"`
	Status    constant.OrderStatus `db:"status"`
	ChangedBy string               `db:"changed_by"`
	Comment   string               `db:"comment"`
	ChangedAt time.Time            `db:"changed_at"`
}

// RemoteOrder is one order as seen in a marketplace feed, already mapped
// to the internal status vocabulary by the connector.
type RemoteOrder struct {
	ExternalOrderID string
	OrderNumber     string
	Marketplace     string
	Channel         constant.OrderChannel
	Status          constant.OrderStatus
	// WarehouseID is the local warehouse, resolved from
	// MarketplaceWarehouseID on first sighting.
	WarehouseID            uint64
	MarketplaceWarehouseID string
	Total                  float64
	Items                  []OrderItem
}

type CreateOrderRequest struct {
	SellerID    uint64
	WarehouseID uint64             `json:"warehouse_id" validate:"required"`
	Items       []OrderItemRequest `json:"items" validate:"required,dive,required"`
}

type OrderItemRequest struct {
	ProductID uint64  `json:"product_id" validate:"required"`
	Article   string  `json:"article"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderResponse struct {
	OrderID     uint64 `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

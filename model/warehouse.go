package model

import "github.com/marketsync/seller-hub/constant"

type Warehouse struct {
	ID       uint64                 `db:"id"`
	SellerID uint64                 `db:"seller_id"`
	Name     string                 `db:"name"`
	Type     constant.WarehouseType `db:"type"`

	// settings
	TransferStock  bool `db:"transfer_stock"`
	UseForOrders   bool `db:"use_for_orders"`
	Priority       int  `db:"priority"`
	ReturnOnCancel bool `db:"return_on_cancel"`
}

// WarehouseLink maps a local warehouse onto one remote warehouse of one
// marketplace. It is the fan-out target set of the stock synchronizer.
type WarehouseLink struct {
	ID                     uint64 `db:"id"`
	WarehouseID            uint64 `db:"warehouse_id"`
	Marketplace            string `db:"marketplace"`
	MarketplaceWarehouseID string `db:"marketplace_warehouse_id"`
}

package model

import (
	"time"

	"github.com/marketsync/seller-hub/constant"
)

// StockSyncHistoryEntry is append-only, one row per (item, marketplace)
// sync attempt.
type StockSyncHistoryEntry struct {
	ID                     uint64              `db:"id"`
	WarehouseID            uint64              `db:"warehouse_id"`
	Marketplace            string              `db:"marketplace"`
	MarketplaceWarehouseID string              `db:"marketplace_warehouse_id"`
	ProductArticle         string              `db:"product_article"`
	QuantitySent           int64               `db:"quantity_sent"`
	Status                 constant.SyncStatus `db:"status"`
	ErrorMessage           string              `db:"error_message"`
	SyncedAt               time.Time           `db:"synced_at"`
}

type StockUpdateItem struct {
	SKU      string `json:"sku"`
	Quantity int64  `json:"quantity"`
}

type RemoteStock struct {
	SKU      string
	Quantity int64
}

type SyncResult struct {
	Synced  int `json:"synced"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

func (r *SyncResult) Add(other SyncResult) {
	r.Synced += other.Synced
	r.Failed += other.Failed
	r.Skipped += other.Skipped
}

// PollResult aggregates one order-sync pass for a seller+marketplace.
type PollResult struct {
	Fetched     int `json:"fetched"`
	Upserted    int `json:"upserted"`
	Transitions int `json:"transitions"`
	Failed      int `json:"failed"`
}

package constant

const (
	MarketplaceOzon        = "ozon"
	MarketplaceWildberries = "wildberries"
)

type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// Background job identifiers. A restart registers the same names again,
// replacing the previous schedule instead of duplicating it.
const (
	JobOrderSync = "order_sync_job"
	JobStockSync = "stock_sync_job"
)

type contextKey string

const SellerIDKey contextKey = "seller_id"

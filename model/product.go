package model

// Product carries the subset of the catalog the sync pipeline needs: the
// local article and its per-marketplace SKU aliases.
type Product struct {
	ID       uint64 `db:"id"`
	SellerID uint64 `db:"seller_id"`
	Article  string `db:"article"`
	Name     string `db:"name"`
}

// MarketplaceSKU maps a local product article to the SKU the marketplace
// knows it by. Articles without a mapping are skipped during sync.
type MarketplaceSKU struct {
	ProductID   uint64 `db:"product_id"`
	Article     string `db:"article"`
	Marketplace string `db:"marketplace"`
	SKU         string `db:"sku"`
}

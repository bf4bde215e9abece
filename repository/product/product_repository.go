package product

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/model"
)

type ProductRepository interface {
	GetArticles(ctx context.Context, sellerID uint64) (map[uint64]string, error)
	GetMarketplaceSKUs(ctx context.Context, sellerID uint64, marketplace string) (map[string]string, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

// GetArticles returns product_id -> local article for the seller.
func (r *SQL) GetArticles(ctx context.Context, sellerID uint64) (map[uint64]string, error) {
	var products []model.Product
	q := "SELECT id, seller_id, article, name FROM product WHERE seller_id = ?"
	if err := r.conn.SelectContext(ctx, &products, q, sellerID); err != nil {
		return nil, err
	}
	articles := make(map[uint64]string, len(products))
	for _, p := range products {
		articles[p.ID] = p.Article
	}
	return articles, nil
}

// GetMarketplaceSKUs returns article -> marketplace SKU for the seller on
// one marketplace. Articles absent from the map have no listing there.
func (r *SQL) GetMarketplaceSKUs(ctx context.Context, sellerID uint64, marketplace string) (map[string]string, error) {
	var mappings []model.MarketplaceSKU
	q := `SELECT ms.product_id, p.article, ms.marketplace, ms.sku
	FROM marketplace_sku ms
	JOIN product p ON p.id = ms.product_id
	WHERE p.seller_id = ? AND ms.marketplace = ?`
	if err := r.conn.SelectContext(ctx, &mappings, q, sellerID, marketplace); err != nil {
		return nil, err
	}
	skus := make(map[string]string, len(mappings))
	for _, m := range mappings {
		skus[m.Article] = m.SKU
	}
	return skus, nil
}

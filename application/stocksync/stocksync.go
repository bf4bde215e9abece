package stocksync

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/marketsync/seller-hub/application/ledger"
	"github.com/marketsync/seller-hub/cmd/config"
	"github.com/marketsync/seller-hub/constant"
	"github.com/marketsync/seller-hub/model"
	credentialrepo "github.com/marketsync/seller-hub/repository/credential"
	inventoryrepo "github.com/marketsync/seller-hub/repository/inventory"
	productrepo "github.com/marketsync/seller-hub/repository/product"
	redisrepo "github.com/marketsync/seller-hub/repository/redis"
	synclogrepo "github.com/marketsync/seller-hub/repository/synclog"
	warehouserepo "github.com/marketsync/seller-hub/repository/warehouse"
	"github.com/marketsync/seller-hub/thirdparty/marketplace"
	"github.com/marketsync/seller-hub/utils/errors"
	"github.com/marketsync/seller-hub/utils/logger"
	"go.uber.org/zap"
)

// StockSyncApp fans local availability out to every marketplace warehouse
// linked to a local warehouse. A failure on one link, batch or item never
// aborts its siblings; outcomes are aggregated into a SyncResult and each
// attempt is recorded in stock sync history.
type StockSyncApp interface {
	SyncOne(ctx context.Context, warehouseID uint64, article string, quantity int64) (*model.SyncResult, error)
	SyncAll(ctx context.Context, warehouseID uint64) (*model.SyncResult, error)
	SyncProduct(ctx context.Context, sellerID, productID uint64) (*model.SyncResult, error)
	ImportStocks(ctx context.Context, sellerID uint64, marketplaceName string) (*model.LedgerResult, error)
	SaveCredential(ctx context.Context, cred *model.Credential) error
}

type stockSyncAppImpl struct {
	config         *config.Config
	ledgerApp      ledger.LedgerApp
	inventoryRepo  inventoryrepo.InventoryRepository
	warehouseRepo  warehouserepo.WarehouseRepository
	productRepo    productrepo.ProductRepository
	credentialRepo credentialrepo.CredentialRepository
	synclogRepo    synclogrepo.SyncLogRepository
	redisRepo      redisrepo.Repository
	factory        *marketplace.Factory
}

func NewStockSyncApp(cfg *config.Config, ledgerApp ledger.LedgerApp, inventoryRepo inventoryrepo.InventoryRepository, warehouseRepo warehouserepo.WarehouseRepository, productRepo productrepo.ProductRepository, credentialRepo credentialrepo.CredentialRepository, synclogRepo synclogrepo.SyncLogRepository, redisRepo redisrepo.Repository, factory *marketplace.Factory) StockSyncApp {
	return &stockSyncAppImpl{
		config:         cfg,
		ledgerApp:      ledgerApp,
		inventoryRepo:  inventoryRepo,
		warehouseRepo:  warehouseRepo,
		productRepo:    productRepo,
		credentialRepo: credentialRepo,
		synclogRepo:    synclogRepo,
		redisRepo:      redisRepo,
		factory:        factory,
	}
}

func (s *stockSyncAppImpl) SyncOne(ctx context.Context, warehouseID uint64, article string, quantity int64) (*model.SyncResult, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[SyncOne] get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	links, err := s.warehouseRepo.GetLinks(ctx, warehouseID)
	if err != nil {
		logger.Error("[SyncOne] get links", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := &model.SyncResult{}
	for _, link := range links {
		linkResult := s.syncLinkItems(ctx, warehouse, link, []syncItem{{article: article, quantity: quantity}})
		result.Add(linkResult)
	}
	return result, nil
}

func (s *stockSyncAppImpl) SyncAll(ctx context.Context, warehouseID uint64) (*model.SyncResult, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[SyncAll] get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	records, err := s.inventoryRepo.ListBySeller(ctx, warehouse.SellerID)
	if err != nil {
		logger.Error("[SyncAll] list inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	links, err := s.warehouseRepo.GetLinks(ctx, warehouseID)
	if err != nil {
		logger.Error("[SyncAll] get links", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]syncItem, 0, len(records))
	for _, rec := range records {
		items = append(items, syncItem{article: rec.SKU, quantity: rec.Available})
	}

	result := &model.SyncResult{}
	for _, link := range links {
		linkResult := s.syncLinkItems(ctx, warehouse, link, items)
		result.Add(linkResult)
	}
	return result, nil
}

// SyncProduct pushes one product's availability through every
// transfer-enabled warehouse of its seller. The rabbitmq stock.changed
// consumer drives this path.
func (s *stockSyncAppImpl) SyncProduct(ctx context.Context, sellerID, productID uint64) (*model.SyncResult, error) {
	record, err := s.inventoryRepo.GetBySellerProduct(ctx, sellerID, productID)
	if err != nil {
		logger.Error("[SyncProduct] get record", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if record == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	warehouses, err := s.warehouseRepo.ListBySeller(ctx, sellerID, true)
	if err != nil {
		logger.Error("[SyncProduct] list warehouses", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := &model.SyncResult{}
	for _, warehouse := range warehouses {
		warehouseResult, err := s.SyncOne(ctx, warehouse.ID, record.SKU, record.Available)
		if err != nil {
			logger.Error("[SyncProduct] sync warehouse", zap.Uint64("warehouse_id", warehouse.ID), zap.String("error", err.Error()))
			continue
		}
		result.Add(*warehouseResult)
	}
	return result, nil
}

// ImportStocks pulls current figures from one marketplace and overwrites
// the seller's local quantities with them, one ledger entry per changed
// item.
func (s *stockSyncAppImpl) ImportStocks(ctx context.Context, sellerID uint64, marketplaceName string) (*model.LedgerResult, error) {
	connector, err := s.factory.Get(marketplaceName)
	if err != nil {
		logger.Warn("[ImportStocks] no connector for marketplace", zap.String("marketplace", marketplaceName))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	cred, err := s.getCredential(ctx, sellerID, marketplaceName)
	if err != nil {
		logger.Error("[ImportStocks] get credential", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cred == nil {
		return nil, errors.SetCustomError(constant.ErrMissingCredential)
	}

	stocks, err := connector.GetStocks(ctx, cred, s.findLinkID(ctx, sellerID, marketplaceName))
	if err != nil {
		logger.Error("[ImportStocks] get stocks",
			zap.String("marketplace", marketplaceName),
			zap.String("error", err.Error()))
		return nil, err
	}

	return s.ledgerApp.ImportFromMarketplace(ctx, sellerID, marketplaceName, stocks)
}

// findLinkID returns the seller's first linked warehouse id on the
// marketplace, walking warehouses in priority order. Connectors that
// report stocks account-wide accept the empty fallback.
func (s *stockSyncAppImpl) findLinkID(ctx context.Context, sellerID uint64, marketplaceName string) string {
	warehouses, err := s.warehouseRepo.ListBySeller(ctx, sellerID, false)
	if err != nil {
		logger.Warn("[ImportStocks] list warehouses", zap.String("error", err.Error()))
		return ""
	}
	for _, w := range warehouses {
		links, err := s.warehouseRepo.GetLinks(ctx, w.ID)
		if err != nil {
			logger.Warn("[ImportStocks] get links", zap.String("error", err.Error()))
			continue
		}
		for _, link := range links {
			if link.Marketplace == marketplaceName {
				return link.MarketplaceWarehouseID
			}
		}
	}
	return ""
}

// SaveCredential stores a seller's marketplace keys and drops the cached
// copy so the next sync picks the new ones up.
func (s *stockSyncAppImpl) SaveCredential(ctx context.Context, cred *model.Credential) error {
	if _, err := s.factory.Get(cred.Marketplace); err != nil {
		logger.Warn("[SaveCredential] no connector for marketplace", zap.String("marketplace", cred.Marketplace))
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.credentialRepo.Upsert(ctx, cred); err != nil {
		logger.Error("[SaveCredential] upsert credential", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	key := credentialCacheKey(cred.SellerID, cred.Marketplace)
	if err := s.redisRepo.Delete(ctx, key); err != nil {
		logger.Warn("[SaveCredential] drop cached credential", zap.String("error", err.Error()))
	}
	return nil
}

type syncItem struct {
	article  string
	quantity int64
}

// syncLinkItems sends items to one warehouse link in batches. One entry
// is appended to the sync history per (item, marketplace) attempt.
func (s *stockSyncAppImpl) syncLinkItems(ctx context.Context, warehouse *model.Warehouse, link model.WarehouseLink, items []syncItem) model.SyncResult {
	result := model.SyncResult{}

	connector, err := s.factory.Get(link.Marketplace)
	if err != nil {
		logger.Warn("[StockSync] no connector for marketplace", zap.String("marketplace", link.Marketplace))
		result.Failed += len(items)
		return result
	}

	cred, err := s.getCredential(ctx, warehouse.SellerID, link.Marketplace)
	if err != nil || cred == nil {
		logger.Warn("[StockSync] missing credential",
			zap.Uint64("seller_id", warehouse.SellerID),
			zap.String("marketplace", link.Marketplace))
		result.Failed += len(items)
		return result
	}

	skus, err := s.productRepo.GetMarketplaceSKUs(ctx, warehouse.SellerID, link.Marketplace)
	if err != nil {
		logger.Error("[StockSync] get marketplace skus", zap.String("error", err.Error()))
		result.Failed += len(items)
		return result
	}

	type mappedItem struct {
		article string
		update  model.StockUpdateItem
	}
	mapped := make([]mappedItem, 0, len(items))
	for _, item := range items {
		sku, ok := skus[item.article]
		if !ok {
			logger.Warn("[StockSync] article has no sku on marketplace, skipping",
				zap.String("article", item.article),
				zap.String("marketplace", link.Marketplace))
			result.Skipped++
			continue
		}
		mapped = append(mapped, mappedItem{
			article: item.article,
			update:  model.StockUpdateItem{SKU: sku, Quantity: item.quantity},
		})
	}

	batchSize := s.config.Sync.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	for start := 0; start < len(mapped); start += batchSize {
		end := start + batchSize
		if end > len(mapped) {
			end = len(mapped)
		}
		batch := mapped[start:end]

		if start > 0 && s.config.Sync.BatchPause > 0 {
			time.Sleep(s.config.Sync.BatchPause)
		}

		updates := make([]model.StockUpdateItem, 0, len(batch))
		for _, m := range batch {
			updates = append(updates, m.update)
		}

		status := constant.SyncStatusSuccess
		errorMessage := ""
		if err := connector.UpdateStock(ctx, cred, link.MarketplaceWarehouseID, updates); err != nil {
			logger.Error("[StockSync] update stock batch",
				zap.String("marketplace", link.Marketplace),
				zap.String("error", err.Error()))
			status = constant.SyncStatusFailed
			errorMessage = err.Error()
			result.Failed += len(batch)
		} else {
			result.Synced += len(batch)
		}

		for _, m := range batch {
			entry := &model.StockSyncHistoryEntry{
				WarehouseID:            warehouse.ID,
				Marketplace:            link.Marketplace,
				MarketplaceWarehouseID: link.MarketplaceWarehouseID,
				ProductArticle:         m.article,
				QuantitySent:           m.update.Quantity,
				Status:                 status,
				ErrorMessage:           errorMessage,
			}
			if err := s.synclogRepo.Insert(ctx, entry); err != nil {
				logger.Error("[StockSync] insert sync history", zap.String("error", err.Error()))
			}
		}
	}

	return result
}

const credentialCacheTTL = 5 * time.Minute

// getCredential resolves a seller credential through a short-lived redis
// cache in front of the encrypted store.
func (s *stockSyncAppImpl) getCredential(ctx context.Context, sellerID uint64, marketplaceName string) (*model.Credential, error) {
	key := credentialCacheKey(sellerID, marketplaceName)
	if cached, err := s.redisRepo.Get(ctx, key); err == nil && cached != "" {
		var cred model.Credential
		if err := json.Unmarshal([]byte(cached), &cred); err == nil {
			return &cred, nil
		}
	}

	cred, err := s.credentialRepo.Get(ctx, sellerID, marketplaceName)
	if err != nil || cred == nil {
		return cred, err
	}

	if raw, err := json.Marshal(cred); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(raw), credentialCacheTTL); err != nil {
			logger.Warn("[StockSync] cache credential", zap.String("error", err.Error()))
		}
	}
	return cred, nil
}

func credentialCacheKey(sellerID uint64, marketplaceName string) string {
	return "cred:" + marketplaceName + ":" + strconv.FormatUint(sellerID, 10)
}

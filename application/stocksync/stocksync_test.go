package stocksync_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	appstocksync "github.com/marketsync/seller-hub/application/stocksync"
	"github.com/marketsync/seller-hub/cmd/config"
	"github.com/marketsync/seller-hub/constant"
	ledgermocks "github.com/marketsync/seller-hub/mocks/application/ledger"
	credentialmocks "github.com/marketsync/seller-hub/mocks/repository/credential"
	inventorymocks "github.com/marketsync/seller-hub/mocks/repository/inventory"
	productmocks "github.com/marketsync/seller-hub/mocks/repository/product"
	redismocks "github.com/marketsync/seller-hub/mocks/repository/redis"
	synclogmocks "github.com/marketsync/seller-hub/mocks/repository/synclog"
	warehousemocks "github.com/marketsync/seller-hub/mocks/repository/warehouse"
	marketplacemocks "github.com/marketsync/seller-hub/mocks/thirdparty/marketplace"
	"github.com/marketsync/seller-hub/model"
	"github.com/marketsync/seller-hub/thirdparty/marketplace"
	cerr "github.com/marketsync/seller-hub/utils/errors"
	"github.com/stretchr/testify/mock"
)

type syncFields struct {
	ledgerApp      *ledgermocks.LedgerApp
	inventoryRepo  *inventorymocks.InventoryRepository
	warehouseRepo  *warehousemocks.WarehouseRepository
	productRepo    *productmocks.ProductRepository
	credentialRepo *credentialmocks.CredentialRepository
	synclogRepo    *synclogmocks.SyncLogRepository
	redisRepo      *redismocks.Repository
	connector      *marketplacemocks.Connector
}

func newSyncFields(t *testing.T, connectorName string) syncFields {
	f := syncFields{
		ledgerApp:      ledgermocks.NewLedgerApp(t),
		inventoryRepo:  inventorymocks.NewInventoryRepository(t),
		warehouseRepo:  warehousemocks.NewWarehouseRepository(t),
		productRepo:    productmocks.NewProductRepository(t),
		credentialRepo: credentialmocks.NewCredentialRepository(t),
		synclogRepo:    synclogmocks.NewSyncLogRepository(t),
		redisRepo:      redismocks.NewRepository(t),
		connector:      marketplacemocks.NewConnector(t),
	}
	f.connector.On("Name").Return(connectorName)
	return f
}

// newSyncApp builds the app with zero batch pause so tests do not sleep.
func newSyncApp(f syncFields, batchSize int) appstocksync.StockSyncApp {
	cfg := &config.Config{}
	cfg.Sync.BatchSize = batchSize
	cfg.Sync.BatchPause = 0
	return appstocksync.NewStockSyncApp(cfg, f.ledgerApp, f.inventoryRepo, f.warehouseRepo, f.productRepo, f.credentialRepo, f.synclogRepo, f.redisRepo, marketplace.NewFactory(f.connector))
}

func expectCredential(f syncFields, sellerID uint64, marketplaceName string) {
	key := fmt.Sprintf("cred:%s:%d", marketplaceName, sellerID)
	f.redisRepo.On("Get", mock.Anything, key).Return("", errors.New("redis: nil")).Once()
	f.credentialRepo.On("Get", mock.Anything, sellerID, marketplaceName).Return(&model.Credential{
		SellerID:    sellerID,
		Marketplace: marketplaceName,
		ClientID:    "client",
		APIKey:      "key",
	}, nil).Once()
	f.redisRepo.On("SetWithTTL", mock.Anything, key, mock.Anything, mock.Anything).Return(nil).Once()
}

func TestStockSyncApp_SyncAll_Batching(t *testing.T) {
	f := newSyncFields(t, constant.MarketplaceOzon)

	// 250 articles split into batches of 100, 100 and 50. The middle
	// batch fails; the other two must still go through.
	records := make([]model.InventoryRecord, 0, 250)
	skus := make(map[string]string, 250)
	for i := 0; i < 250; i++ {
		article := fmt.Sprintf("A-%d", i)
		records = append(records, model.InventoryRecord{
			SellerID:  1,
			ProductID: uint64(i + 1),
			SKU:       article,
			Available: int64(i),
		})
		skus[article] = fmt.Sprintf("MP-%d", i)
	}

	f.warehouseRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.Warehouse{
		ID:       3,
		SellerID: 1,
	}, nil).Once()
	f.inventoryRepo.On("ListBySeller", mock.Anything, uint64(1)).Return(records, nil).Once()
	f.warehouseRepo.On("GetLinks", mock.Anything, uint64(3)).Return([]model.WarehouseLink{
		{WarehouseID: 3, Marketplace: constant.MarketplaceOzon, MarketplaceWarehouseID: "555"},
	}, nil).Once()

	expectCredential(f, 1, constant.MarketplaceOzon)
	f.productRepo.On("GetMarketplaceSKUs", mock.Anything, uint64(1), constant.MarketplaceOzon).Return(skus, nil).Once()

	f.connector.On("UpdateStock", mock.Anything, mock.Anything, "555", mock.MatchedBy(func(items []model.StockUpdateItem) bool {
		return len(items) == 100 && items[0].SKU == "MP-0"
	})).Return(nil).Once()
	f.connector.On("UpdateStock", mock.Anything, mock.Anything, "555", mock.MatchedBy(func(items []model.StockUpdateItem) bool {
		return len(items) == 100 && items[0].SKU == "MP-100"
	})).Return(cerr.SetMarketplaceError(constant.MarketplaceOzon, "429", "too many requests")).Once()
	f.connector.On("UpdateStock", mock.Anything, mock.Anything, "555", mock.MatchedBy(func(items []model.StockUpdateItem) bool {
		return len(items) == 50 && items[0].SKU == "MP-200"
	})).Return(nil).Once()

	f.synclogRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Times(250)

	app := newSyncApp(f, 100)
	got, err := app.SyncAll(context.Background(), 3)
	if err != nil {
		t.Fatalf("SyncAll() error = %v", err)
	}
	if got.Synced != 150 || got.Failed != 100 || got.Skipped != 0 {
		t.Fatalf("SyncAll() = %+v, want Synced=150 Failed=100 Skipped=0", got)
	}
}

func TestStockSyncApp_SyncAll_LinkIsolation(t *testing.T) {
	// Two links on the same marketplace warehouse set: a failure on the
	// first link must not prevent the second from syncing.
	f := newSyncFields(t, constant.MarketplaceOzon)

	f.warehouseRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.Warehouse{
		ID:       3,
		SellerID: 1,
	}, nil).Once()
	f.inventoryRepo.On("ListBySeller", mock.Anything, uint64(1)).Return([]model.InventoryRecord{
		{SellerID: 1, ProductID: 10, SKU: "A-1", Available: 4},
	}, nil).Once()
	f.warehouseRepo.On("GetLinks", mock.Anything, uint64(3)).Return([]model.WarehouseLink{
		{WarehouseID: 3, Marketplace: constant.MarketplaceOzon, MarketplaceWarehouseID: "111"},
		{WarehouseID: 3, Marketplace: constant.MarketplaceOzon, MarketplaceWarehouseID: "222"},
	}, nil).Once()

	expectCredential(f, 1, constant.MarketplaceOzon)
	// second link hits the cache
	f.redisRepo.On("Get", mock.Anything, "cred:ozon:1").Return(`{"SellerID":1,"Marketplace":"ozon","ClientID":"client","APIKey":"key"}`, nil).Once()

	f.productRepo.On("GetMarketplaceSKUs", mock.Anything, uint64(1), constant.MarketplaceOzon).Return(map[string]string{"A-1": "MP-1"}, nil).Twice()

	f.connector.On("UpdateStock", mock.Anything, mock.Anything, "111", mock.Anything).Return(cerr.SetMarketplaceError(constant.MarketplaceOzon, "500", "internal")).Once()
	f.connector.On("UpdateStock", mock.Anything, mock.Anything, "222", mock.Anything).Return(nil).Once()

	f.synclogRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *model.StockSyncHistoryEntry) bool {
		return e.MarketplaceWarehouseID == "111" && e.Status == constant.SyncStatusFailed && e.ErrorMessage != ""
	})).Return(nil).Once()
	f.synclogRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *model.StockSyncHistoryEntry) bool {
		return e.MarketplaceWarehouseID == "222" && e.Status == constant.SyncStatusSuccess
	})).Return(nil).Once()

	app := newSyncApp(f, 100)
	got, err := app.SyncAll(context.Background(), 3)
	if err != nil {
		t.Fatalf("SyncAll() error = %v", err)
	}
	if got.Synced != 1 || got.Failed != 1 {
		t.Fatalf("SyncAll() = %+v, want Synced=1 Failed=1", got)
	}
}

func TestStockSyncApp_SyncOne(t *testing.T) {
	tests := []struct {
		name     string
		article  string
		mockCall func(f syncFields)
		want     *model.SyncResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: single article pushed to linked warehouse",
			article: "A-1",
			mockCall: func(f syncFields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.Warehouse{
					ID:       3,
					SellerID: 1,
				}, nil).Once()
				f.warehouseRepo.On("GetLinks", mock.Anything, uint64(3)).Return([]model.WarehouseLink{
					{WarehouseID: 3, Marketplace: constant.MarketplaceOzon, MarketplaceWarehouseID: "555"},
				}, nil).Once()
				expectCredential(f, 1, constant.MarketplaceOzon)
				f.productRepo.On("GetMarketplaceSKUs", mock.Anything, uint64(1), constant.MarketplaceOzon).Return(map[string]string{"A-1": "MP-1"}, nil).Once()
				f.connector.On("UpdateStock", mock.Anything, mock.Anything, "555", []model.StockUpdateItem{{SKU: "MP-1", Quantity: 9}}).Return(nil).Once()
				f.synclogRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: &model.SyncResult{Synced: 1},
		},
		{
			name:    "success: article without marketplace sku is skipped",
			article: "A-UNMAPPED",
			mockCall: func(f syncFields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.Warehouse{
					ID:       3,
					SellerID: 1,
				}, nil).Once()
				f.warehouseRepo.On("GetLinks", mock.Anything, uint64(3)).Return([]model.WarehouseLink{
					{WarehouseID: 3, Marketplace: constant.MarketplaceOzon, MarketplaceWarehouseID: "555"},
				}, nil).Once()
				expectCredential(f, 1, constant.MarketplaceOzon)
				f.productRepo.On("GetMarketplaceSKUs", mock.Anything, uint64(1), constant.MarketplaceOzon).Return(map[string]string{"A-1": "MP-1"}, nil).Once()
			},
			want: &model.SyncResult{Skipped: 1},
		},
		{
			name:    "error: unknown warehouse",
			article: "A-1",
			mockCall: func(f syncFields) {
				f.warehouseRepo.On("GetByID", mock.Anything, uint64(3)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFields(t, constant.MarketplaceOzon)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newSyncApp(f, 100)

			got, err := app.SyncOne(context.Background(), 3, tt.article, 9)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SyncOne() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Synced != tt.want.Synced || got.Failed != tt.want.Failed || got.Skipped != tt.want.Skipped {
				t.Fatalf("SyncOne() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStockSyncApp_SyncProduct(t *testing.T) {
	f := newSyncFields(t, constant.MarketplaceOzon)

	f.inventoryRepo.On("GetBySellerProduct", mock.Anything, uint64(1), uint64(10)).Return(&model.InventoryRecord{
		SellerID:  1,
		ProductID: 10,
		SKU:       "A-1",
		Available: 6,
	}, nil).Once()
	f.warehouseRepo.On("ListBySeller", mock.Anything, uint64(1), true).Return([]model.Warehouse{
		{ID: 3, SellerID: 1, TransferStock: true},
	}, nil).Once()

	f.warehouseRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.Warehouse{
		ID:       3,
		SellerID: 1,
	}, nil).Once()
	f.warehouseRepo.On("GetLinks", mock.Anything, uint64(3)).Return([]model.WarehouseLink{
		{WarehouseID: 3, Marketplace: constant.MarketplaceOzon, MarketplaceWarehouseID: "555"},
	}, nil).Once()
	expectCredential(f, 1, constant.MarketplaceOzon)
	f.productRepo.On("GetMarketplaceSKUs", mock.Anything, uint64(1), constant.MarketplaceOzon).Return(map[string]string{"A-1": "MP-1"}, nil).Once()
	f.connector.On("UpdateStock", mock.Anything, mock.Anything, "555", []model.StockUpdateItem{{SKU: "MP-1", Quantity: 6}}).Return(nil).Once()
	f.synclogRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	app := newSyncApp(f, 100)
	got, err := app.SyncProduct(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("SyncProduct() error = %v", err)
	}
	if got.Synced != 1 {
		t.Fatalf("SyncProduct() = %+v, want Synced=1", got)
	}
}

func TestStockSyncApp_ImportStocks(t *testing.T) {
	tests := []struct {
		name        string
		marketplace string
		mockCall    func(f syncFields)
		want        *model.LedgerResult
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name:        "success: remote figures handed to the ledger",
			marketplace: constant.MarketplaceOzon,
			mockCall: func(f syncFields) {
				expectCredential(f, 1, constant.MarketplaceOzon)
				f.warehouseRepo.On("ListBySeller", mock.Anything, uint64(1), false).Return([]model.Warehouse{
					{ID: 3, SellerID: 1},
				}, nil).Once()
				f.warehouseRepo.On("GetLinks", mock.Anything, uint64(3)).Return([]model.WarehouseLink{
					{WarehouseID: 3, Marketplace: constant.MarketplaceOzon, MarketplaceWarehouseID: "555"},
				}, nil).Once()
				f.connector.On("GetStocks", mock.Anything, mock.Anything, "555").Return([]model.RemoteStock{
					{SKU: "A-1", Quantity: 7},
					{SKU: "A-2", Quantity: 0},
				}, nil).Once()
				f.ledgerApp.On("ImportFromMarketplace", mock.Anything, uint64(1), constant.MarketplaceOzon, []model.RemoteStock{
					{SKU: "A-1", Quantity: 7},
					{SKU: "A-2", Quantity: 0},
				}).Return(&model.LedgerResult{Applied: 2}, nil).Once()
			},
			want: &model.LedgerResult{Applied: 2},
		},
		{
			name:        "success: seller without links imports account-wide",
			marketplace: constant.MarketplaceOzon,
			mockCall: func(f syncFields) {
				expectCredential(f, 1, constant.MarketplaceOzon)
				f.warehouseRepo.On("ListBySeller", mock.Anything, uint64(1), false).Return([]model.Warehouse{
					{ID: 3, SellerID: 1},
				}, nil).Once()
				f.warehouseRepo.On("GetLinks", mock.Anything, uint64(3)).Return([]model.WarehouseLink{}, nil).Once()
				f.connector.On("GetStocks", mock.Anything, mock.Anything, "").Return([]model.RemoteStock{
					{SKU: "A-1", Quantity: 3},
				}, nil).Once()
				f.ledgerApp.On("ImportFromMarketplace", mock.Anything, uint64(1), constant.MarketplaceOzon, []model.RemoteStock{
					{SKU: "A-1", Quantity: 3},
				}).Return(&model.LedgerResult{Applied: 1}, nil).Once()
			},
			want: &model.LedgerResult{Applied: 1},
		},
		{
			name:        "error: seller has no credential for the marketplace",
			marketplace: constant.MarketplaceOzon,
			mockCall: func(f syncFields) {
				f.redisRepo.On("Get", mock.Anything, "cred:ozon:1").Return("", errors.New("redis: nil")).Once()
				f.credentialRepo.On("Get", mock.Anything, uint64(1), constant.MarketplaceOzon).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrMissingCredential,
		},
		{
			name:        "error: marketplace without a connector",
			marketplace: "unknown-marketplace",
			wantErr:     true,
			errCode:     constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFields(t, constant.MarketplaceOzon)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newSyncApp(f, 100)

			got, err := app.ImportStocks(context.Background(), 1, tt.marketplace)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ImportStocks() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Applied != tt.want.Applied {
				t.Fatalf("ImportStocks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStockSyncApp_SaveCredential(t *testing.T) {
	tests := []struct {
		name     string
		cred     *model.Credential
		mockCall func(f syncFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: stored and cache dropped",
			cred: &model.Credential{SellerID: 1, Marketplace: constant.MarketplaceOzon, ClientID: "client", APIKey: "key"},
			mockCall: func(f syncFields) {
				f.credentialRepo.On("Upsert", mock.Anything, &model.Credential{
					SellerID:    1,
					Marketplace: constant.MarketplaceOzon,
					ClientID:    "client",
					APIKey:      "key",
				}).Return(nil).Once()
				f.redisRepo.On("Delete", mock.Anything, "cred:ozon:1").Return(nil).Once()
			},
		},
		{
			name:    "error: marketplace without a connector",
			cred:    &model.Credential{SellerID: 1, Marketplace: "unknown-marketplace", APIKey: "key"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: store failure",
			cred: &model.Credential{SellerID: 1, Marketplace: constant.MarketplaceOzon, APIKey: "key"},
			mockCall: func(f syncFields) {
				f.credentialRepo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFields(t, constant.MarketplaceOzon)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newSyncApp(f, 100)

			err := app.SaveCredential(context.Background(), tt.cred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SaveCredential() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

package ledger_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appledger "github.com/marketsync/seller-hub/application/ledger"
	"github.com/marketsync/seller-hub/constant"
	historymocks "github.com/marketsync/seller-hub/mocks/repository/history"
	inventorymocks "github.com/marketsync/seller-hub/mocks/repository/inventory"
	txmocks "github.com/marketsync/seller-hub/mocks/repository/tx"
	"github.com/marketsync/seller-hub/model"
	cerr "github.com/marketsync/seller-hub/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Publisher is nil in all tests; ledger checks for nil before publishing.

func TestLedgerApp_Reserve(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		inventoryRepo *inventorymocks.InventoryRepository
		historyRepo   *historymocks.HistoryRepository
	}
	type args struct {
		ctx context.Context
		req *model.LedgerRequest
	}
	orderID := uint64(77)
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.LedgerResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reserve two items, one history entry each",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LedgerRequest{
					SellerID: 1,
					Items: []model.ItemQuantity{
						{ProductID: 10, Quantity: 3},
						{ProductID: 11, Quantity: 2},
					},
					Reason:  "order 77",
					Actor:   "system",
					OrderID: &orderID,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("ReserveTx", mock.Anything, tx, uint64(1), uint64(10), int64(3)).Return(nil).Once()
				f.inventoryRepo.On("ReserveTx", mock.Anything, tx, uint64(1), uint64(11), int64(2)).Return(nil).Once()

				f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.InventoryHistoryEntry) bool {
					return e.ProductID == 10 && e.OperationType == constant.OperationReserve && e.QuantityChange == -3 && e.OrderID != nil && *e.OrderID == 77
				})).Return(nil).Once()
				f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.InventoryHistoryEntry) bool {
					return e.ProductID == 11 && e.OperationType == constant.OperationReserve && e.QuantityChange == -2
				})).Return(nil).Once()
			},
			want:    &model.LedgerResult{Applied: 2},
			wantErr: false,
		},
		{
			name: "success: missing record is skipped, sibling still applied",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LedgerRequest{
					SellerID: 1,
					Items: []model.ItemQuantity{
						{ProductID: 10, Quantity: 3},
						{ProductID: 999, Quantity: 1},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("ReserveTx", mock.Anything, tx, uint64(1), uint64(10), int64(3)).Return(nil).Once()
				f.inventoryRepo.On("ReserveTx", mock.Anything, tx, uint64(1), uint64(999), int64(1)).Return(sql.ErrNoRows).Once()

				f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.InventoryHistoryEntry) bool {
					return e.ProductID == 10
				})).Return(nil).Once()
			},
			want:    &model.LedgerResult{Applied: 1, Skipped: 1},
			wantErr: false,
		},
		{
			name: "error: empty items",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LedgerRequest{SellerID: 1},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: db failure rolls back",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LedgerRequest{
					SellerID: 1,
					Items:    []model.ItemQuantity{{ProductID: 10, Quantity: 3}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("ReserveTx", mock.Anything, tx, uint64(1), uint64(10), int64(3)).Return(errors.New("db error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(tt.fields.txRepo, tt.fields.inventoryRepo, tt.fields.historyRepo, nil)

			got, err := app.Reserve(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reserve() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Applied != tt.want.Applied || got.Skipped != tt.want.Skipped {
				t.Fatalf("Reserve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLedgerApp_Return(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		inventoryRepo *inventorymocks.InventoryRepository
		historyRepo   *historymocks.HistoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.LedgerRequest
		mockCall func(f fields)
		want     *model.LedgerResult
		wantErr  bool
	}{
		{
			name: "success: return writes positive quantity change",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			req: &model.LedgerRequest{
				SellerID: 2,
				Items:    []model.ItemQuantity{{ProductID: 5, Quantity: 4}},
				Reason:   "order cancelled",
				Actor:    "system",
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("ReturnTx", mock.Anything, tx, uint64(2), uint64(5), int64(4)).Return(nil).Once()

				f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.InventoryHistoryEntry) bool {
					return e.OperationType == constant.OperationReturn && e.QuantityChange == 4
				})).Return(nil).Once()
			},
			want:    &model.LedgerResult{Applied: 1},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(tt.fields.txRepo, tt.fields.inventoryRepo, tt.fields.historyRepo, nil)

			got, err := app.Return(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Return() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Applied != tt.want.Applied {
				t.Fatalf("Return() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLedgerApp_ManualSet(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		inventoryRepo *inventorymocks.InventoryRepository
		historyRepo   *historymocks.HistoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.ManualSetRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: set quantity records delta against previous value",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			req: &model.ManualSetRequest{
				SellerID:    1,
				ProductID:   10,
				NewQuantity: 25,
				Reason:      "stocktake",
				Actor:       "ops@seller",
			},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetBySellerProduct", mock.Anything, uint64(1), uint64(10)).Return(&model.InventoryRecord{
					SellerID:  1,
					ProductID: 10,
					Quantity:  20,
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("SetQuantityTx", mock.Anything, tx, uint64(1), uint64(10), int64(25)).Return(nil).Once()

				f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.InventoryHistoryEntry) bool {
					return e.OperationType == constant.OperationManualAdjustment && e.QuantityChange == 5 && e.Actor == "ops@seller"
				})).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: negative quantity rejected before any read",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			req: &model.ManualSetRequest{
				SellerID:    1,
				ProductID:   10,
				NewQuantity: -1,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrNegativeQuantity,
		},
		{
			name: "error: unknown product",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			req: &model.ManualSetRequest{
				SellerID:    1,
				ProductID:   999,
				NewQuantity: 5,
			},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetBySellerProduct", mock.Anything, uint64(1), uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(tt.fields.txRepo, tt.fields.inventoryRepo, tt.fields.historyRepo, nil)

			err := app.ManualSet(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ManualSet() error = %v, wantErr %v", err, tt.wantErr)
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

func TestLedgerApp_ImportFromMarketplace(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		inventoryRepo *inventorymocks.InventoryRepository
		historyRepo   *historymocks.HistoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		stocks   []model.RemoteStock
		mockCall func(f fields)
		want     *model.LedgerResult
	}{
		{
			name: "success: changed sku updated, unknown sku skipped, unchanged sku untouched",
			fields: fields{
				txRepo:        txmocks.NewTxRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				historyRepo:   historymocks.NewHistoryRepository(t),
			},
			stocks: []model.RemoteStock{
				{SKU: "SKU-A", Quantity: 7},
				{SKU: "SKU-B", Quantity: 3},
				{SKU: "SKU-UNKNOWN", Quantity: 1},
			},
			mockCall: func(f fields) {
				f.inventoryRepo.On("ListBySeller", mock.Anything, uint64(1)).Return([]model.InventoryRecord{
					{SellerID: 1, ProductID: 10, SKU: "SKU-A", Quantity: 5},
					{SellerID: 1, ProductID: 11, SKU: "SKU-B", Quantity: 3},
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("SetQuantityTx", mock.Anything, tx, uint64(1), uint64(10), int64(7)).Return(nil).Once()

				f.historyRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.InventoryHistoryEntry) bool {
					return e.ProductID == 10 && e.OperationType == constant.OperationImportFromMarketplace && e.QuantityChange == 2
				})).Return(nil).Once()
			},
			want: &model.LedgerResult{Applied: 1, Skipped: 1},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(tt.fields.txRepo, tt.fields.inventoryRepo, tt.fields.historyRepo, nil)

			got, err := app.ImportFromMarketplace(context.Background(), 1, constant.MarketplaceOzon, tt.stocks)
			if err != nil {
				t.Fatalf("ImportFromMarketplace() error = %v", err)
			}
			if got.Applied != tt.want.Applied || got.Skipped != tt.want.Skipped {
				t.Fatalf("ImportFromMarketplace() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

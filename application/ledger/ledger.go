package ledger

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/constant"
	"github.com/marketsync/seller-hub/model"
	historyrepo "github.com/marketsync/seller-hub/repository/history"
	inventoryrepo "github.com/marketsync/seller-hub/repository/inventory"
	txrepo "github.com/marketsync/seller-hub/repository/tx"
	"github.com/marketsync/seller-hub/thirdparty/rabbitmq"
	"github.com/marketsync/seller-hub/utils/errors"
	"github.com/marketsync/seller-hub/utils/logger"
	"go.uber.org/zap"
)

// LedgerApp is the narrow command surface over the inventory ledger.
// Every completed mutation appends exactly one history entry per affected
// item and keeps available == quantity - reserved.
type LedgerApp interface {
	Reserve(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error)
	Deduct(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error)
	Return(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error)
	AcceptIncome(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error)
	CancelIncome(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error)
	ManualSet(ctx context.Context, req *model.ManualSetRequest) error
	ImportFromMarketplace(ctx context.Context, sellerID uint64, marketplace string, stocks []model.RemoteStock) (*model.LedgerResult, error)
}

type ledgerAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	historyRepo   historyrepo.HistoryRepository
	publisher     *rabbitmq.Publisher
}

func NewLedgerApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, historyRepo historyrepo.HistoryRepository, publisher *rabbitmq.Publisher) LedgerApp {
	return &ledgerAppImpl{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		historyRepo:   historyRepo,
		publisher:     publisher,
	}
}

type mutateFunc func(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error

func (s *ledgerAppImpl) Reserve(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error) {
	return s.applyItems(ctx, req, constant.OperationReserve, s.inventoryRepo.ReserveTx, func(qty int64) int64 { return -qty })
}

func (s *ledgerAppImpl) Deduct(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error) {
	return s.applyItems(ctx, req, constant.OperationSale, s.inventoryRepo.DeductTx, func(qty int64) int64 { return -qty })
}

func (s *ledgerAppImpl) Return(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error) {
	return s.applyItems(ctx, req, constant.OperationReturn, s.inventoryRepo.ReturnTx, func(qty int64) int64 { return qty })
}

func (s *ledgerAppImpl) AcceptIncome(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error) {
	return s.applyItems(ctx, req, constant.OperationIncome, s.inventoryRepo.AddQuantityTx, func(qty int64) int64 { return qty })
}

func (s *ledgerAppImpl) CancelIncome(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error) {
	negate := func(ctx context.Context, tx *sqlx.Tx, sellerID, productID uint64, qty int64) error {
		return s.inventoryRepo.AddQuantityTx(ctx, tx, sellerID, productID, -qty)
	}
	return s.applyItems(ctx, req, constant.OperationIncomeCancel, negate, func(qty int64) int64 { return -qty })
}

// applyItems runs one mutation per item inside a single transaction. A
// missing inventory record is logged and skipped; it never aborts the
// remaining items of the same call.
func (s *ledgerAppImpl) applyItems(ctx context.Context, req *model.LedgerRequest, op constant.OperationType, mutate mutateFunc, change func(qty int64) int64) (*model.LedgerResult, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Ledger] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	result := &model.LedgerResult{}
	applied := make([]uint64, 0, len(req.Items))
	for _, item := range req.Items {
		if err := mutate(ctx, tx, req.SellerID, item.ProductID, item.Quantity); err != nil {
			if err == sql.ErrNoRows {
				logger.Warn("[Ledger] inventory record not found, skipping item",
					zap.String("operation", string(op)),
					zap.Uint64("seller_id", req.SellerID),
					zap.Uint64("product_id", item.ProductID))
				result.Skipped++
				continue
			}
			logger.Error("[Ledger] mutate item", zap.String("operation", string(op)), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		entry := &model.InventoryHistoryEntry{
			SellerID:       req.SellerID,
			ProductID:      item.ProductID,
			OperationType:  op,
			QuantityChange: change(item.Quantity),
			Reason:         req.Reason,
			Actor:          req.Actor,
			OrderID:        req.OrderID,
		}
		if err := s.historyRepo.InsertTx(ctx, tx, entry); err != nil {
			logger.Error("[Ledger] insert history", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		result.Applied++
		applied = append(applied, item.ProductID)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Ledger] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishStockChanged(req.SellerID, applied)
	return result, nil
}

func (s *ledgerAppImpl) ManualSet(ctx context.Context, req *model.ManualSetRequest) error {
	if req.NewQuantity < 0 {
		return errors.SetCustomError(constant.ErrNegativeQuantity)
	}

	record, err := s.inventoryRepo.GetBySellerProduct(ctx, req.SellerID, req.ProductID)
	if err != nil {
		logger.Error("[ManualSet] get record", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if record == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ManualSet] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.inventoryRepo.SetQuantityTx(ctx, tx, req.SellerID, req.ProductID, req.NewQuantity); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[ManualSet] set quantity", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	entry := &model.InventoryHistoryEntry{
		SellerID:       req.SellerID,
		ProductID:      req.ProductID,
		OperationType:  constant.OperationManualAdjustment,
		QuantityChange: req.NewQuantity - record.Quantity,
		Reason:         req.Reason,
		Actor:          req.Actor,
	}
	if err := s.historyRepo.InsertTx(ctx, tx, entry); err != nil {
		logger.Error("[ManualSet] insert history", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ManualSet] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishStockChanged(req.SellerID, []uint64{req.ProductID})
	return nil
}

// ImportFromMarketplace overwrites local quantities with the figures a
// marketplace reports. SKUs with no local inventory record are skipped.
func (s *ledgerAppImpl) ImportFromMarketplace(ctx context.Context, sellerID uint64, marketplace string, stocks []model.RemoteStock) (*model.LedgerResult, error) {
	records, err := s.inventoryRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		logger.Error("[ImportFromMarketplace] list inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	bySKU := make(map[string]model.InventoryRecord, len(records))
	for _, rec := range records {
		bySKU[rec.SKU] = rec
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ImportFromMarketplace] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	result := &model.LedgerResult{}
	applied := make([]uint64, 0, len(stocks))
	for _, stock := range stocks {
		record, ok := bySKU[stock.SKU]
		if !ok {
			logger.Warn("[ImportFromMarketplace] no inventory record for sku, skipping",
				zap.Uint64("seller_id", sellerID),
				zap.String("sku", stock.SKU))
			result.Skipped++
			continue
		}
		if record.Quantity == stock.Quantity {
			continue
		}
		if err := s.inventoryRepo.SetQuantityTx(ctx, tx, sellerID, record.ProductID, stock.Quantity); err != nil {
			logger.Error("[ImportFromMarketplace] set quantity", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		entry := &model.InventoryHistoryEntry{
			SellerID:       sellerID,
			ProductID:      record.ProductID,
			OperationType:  constant.OperationImportFromMarketplace,
			QuantityChange: stock.Quantity - record.Quantity,
			Reason:         "import from " + marketplace,
			Actor:          "system",
		}
		if err := s.historyRepo.InsertTx(ctx, tx, entry); err != nil {
			logger.Error("[ImportFromMarketplace] insert history", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		result.Applied++
		applied = append(applied, record.ProductID)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ImportFromMarketplace] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishStockChanged(sellerID, applied)
	return result, nil
}

// publishStockChanged is best effort; the periodic full sweep covers any
// lost event.
func (s *ledgerAppImpl) publishStockChanged(sellerID uint64, productIDs []uint64) {
	if s.publisher == nil {
		return
	}
	for _, productID := range productIDs {
		msg := rabbitmq.StockChangedMessage{SellerID: sellerID, ProductID: productID}
		if err := s.publisher.PublishStockChanged(msg); err != nil {
			logger.Error("[Ledger] publish stock changed", zap.String("error", err.Error()))
		}
	}
}

package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/marketsync/seller-hub/application/ledger"
	"github.com/marketsync/seller-hub/constant"
	"github.com/marketsync/seller-hub/model"
	orderrepo "github.com/marketsync/seller-hub/repository/order"
	productrepo "github.com/marketsync/seller-hub/repository/product"
	txrepo "github.com/marketsync/seller-hub/repository/tx"
	warehouserepo "github.com/marketsync/seller-hub/repository/warehouse"
	utilsContext "github.com/marketsync/seller-hub/utils/context"
	"github.com/marketsync/seller-hub/utils/errors"
	"github.com/marketsync/seller-hub/utils/logger"
	"go.uber.org/zap"
)

// OrderApp owns order documents and their status transitions. Transitions
// drive the ledger's command surface; the ledger never calls back.
type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	ApplyRemoteOrder(ctx context.Context, sellerID uint64, remote *model.RemoteOrder) (created, transitioned bool, err error)
	Transition(ctx context.Context, orderID uint64, newStatus constant.OrderStatus, changedBy, comment string) error
}

type orderAppImpl struct {
	txRepo        txrepo.TxRepository
	orderRepo     orderrepo.OrderRepository
	warehouseRepo warehouserepo.WarehouseRepository
	productRepo   productrepo.ProductRepository
	ledgerApp     ledger.LedgerApp
}

func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, warehouseRepo warehouserepo.WarehouseRepository, productRepo productrepo.ProductRepository, ledgerApp ledger.LedgerApp) OrderApp {
	return &orderAppImpl{
		txRepo:        txRepo,
		orderRepo:     orderRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		ledgerApp:     ledgerApp,
	}
}

var statusRank = map[constant.OrderStatus]int{
	constant.OrderStatusNew:               0,
	constant.OrderStatusAwaitingPackaging: 1,
	constant.OrderStatusAwaitingDeliver:   2,
	constant.OrderStatusAwaitingShipment:  3,
	constant.OrderStatusDelivering:        4,
	constant.OrderStatusCompleted:         5,
}

// canTransition allows forward movement only; remote feeds may skip
// intermediate states. Cancellation is reachable from any pre-shipment
// state.
func canTransition(old, new constant.OrderStatus) bool {
	if old.IsTerminal() {
		return false
	}
	if new == constant.OrderStatusCancelled {
		return old.IsPreShipment()
	}
	oldRank, okOld := statusRank[old]
	newRank, okNew := statusRank[new]
	if !okOld || !okNew {
		return false
	}
	return newRank > oldRank
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	warehouse, err := s.warehouseRepo.GetByID(ctx, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateOrder] get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil || warehouse.SellerID != req.SellerID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	orderNumber := "R-" + uuid.NewString()
	order := &model.Order{
		OrderNumber:     orderNumber,
		ExternalOrderID: orderNumber,
		SellerID:        req.SellerID,
		WarehouseID:     req.WarehouseID,
		Channel:         constant.OrderChannelRetail,
		Status:          constant.OrderStatusNew,
		ReserveStatus:   constant.ReserveStatusReserved,
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	ledgerItems := make([]model.ItemQuantity, 0, len(req.Items))
	for _, it := range req.Items {
		total := it.Price * float64(it.Quantity)
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Article:   it.Article,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Total:     total,
		})
		ledgerItems = append(ledgerItems, model.ItemQuantity{ProductID: it.ProductID, Quantity: it.Quantity})
		order.Total += total
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertTx(ctx, tx, order)
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.InsertItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.InsertStatusHistoryTx(ctx, tx, &model.OrderStatusHistoryEntry{
		OrderID:   orderID,
		Status:    constant.OrderStatusNew,
		ChangedBy: "seller",
	}); err != nil {
		logger.Error("[CreateOrder] insert status history", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if _, err := s.ledgerApp.Reserve(ctx, &model.LedgerRequest{
		SellerID: req.SellerID,
		Items:    ledgerItems,
		Reason:   "order " + orderNumber,
		Actor:    "seller",
		OrderID:  &orderID,
	}); err != nil {
		logger.Error("[CreateOrder] reserve", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		s.recordError(ctx, orderID, constant.OrderStatusNew, constant.ReserveStatusReserved, err)
	}

	return &model.CreateOrderResponse{OrderID: orderID, OrderNumber: orderNumber}, nil
}

// ApplyRemoteOrder upserts one order from a marketplace feed by its
// natural key (seller_id, external_order_id) and drives the status
// transition the feed reports. Re-applying the same remote event is a
// no-op.
func (s *orderAppImpl) ApplyRemoteOrder(ctx context.Context, sellerID uint64, remote *model.RemoteOrder) (bool, bool, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ApplyRemoteOrder] begin tx", zap.String("error", err.Error()))
		return false, false, errors.SetCustomError(constant.ErrInternal)
	}
	existing, err := s.orderRepo.GetByExternalIDTx(ctx, tx, sellerID, remote.ExternalOrderID)
	if err != nil {
		_ = s.txRepo.RollbackTx(tx)
		logger.Error("[ApplyRemoteOrder] get order", zap.String("error", err.Error()))
		return false, false, errors.SetCustomError(constant.ErrInternal)
	}

	if existing != nil {
		if err := s.txRepo.CommitTx(tx); err != nil {
			logger.Error("[ApplyRemoteOrder] commit tx", zap.String("error", err.Error()))
			return false, false, errors.SetCustomError(constant.ErrInternal)
		}
		if existing.Status == remote.Status {
			return false, false, nil
		}
		if err := s.Transition(ctx, existing.ID, remote.Status, "marketplace", "remote status update"); err != nil {
			return false, false, err
		}
		return false, true, nil
	}

	orderID, err := s.insertRemoteOrder(ctx, tx, sellerID, remote)
	if err != nil {
		_ = s.txRepo.RollbackTx(tx)
		return false, false, err
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ApplyRemoteOrder] commit tx", zap.String("error", err.Error()))
		return false, false, errors.SetCustomError(constant.ErrInternal)
	}

	// FBS orders hold local stock from the moment they are first seen;
	// FBO orders are analytics only and never touch the ledger.
	if remote.Channel == constant.OrderChannelFBS {
		if err := s.reserveRemote(ctx, sellerID, orderID, remote); err != nil {
			logger.Error("[ApplyRemoteOrder] reserve", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
			s.recordError(ctx, orderID, constant.OrderStatusNew, constant.ReserveStatusReserved, err)
		}
	}

	if remote.Status != constant.OrderStatusNew {
		if err := s.Transition(ctx, orderID, remote.Status, "marketplace", "remote status update"); err != nil {
			return true, false, err
		}
		return true, true, nil
	}
	return true, false, nil
}

func (s *orderAppImpl) insertRemoteOrder(ctx context.Context, tx *sqlx.Tx, sellerID uint64, remote *model.RemoteOrder) (uint64, error) {
	reserveStatus := constant.ReserveStatusNone
	if remote.Channel == constant.OrderChannelFBS {
		reserveStatus = constant.ReserveStatusReserved
	}

	items, err := s.resolveItems(ctx, sellerID, remote.Items)
	if err != nil {
		return 0, err
	}

	order := &model.Order{
		OrderNumber:     remote.OrderNumber,
		ExternalOrderID: remote.ExternalOrderID,
		Marketplace:     remote.Marketplace,
		SellerID:        sellerID,
		WarehouseID:     s.resolveWarehouse(ctx, sellerID, remote),
		Channel:         remote.Channel,
		Status:          constant.OrderStatusNew,
		ReserveStatus:   reserveStatus,
		Total:           remote.Total,
	}
	orderID, err := s.orderRepo.InsertTx(ctx, tx, order)
	if err != nil {
		logger.Error("[ApplyRemoteOrder] insert order", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.InsertItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[ApplyRemoteOrder] insert items", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.InsertStatusHistoryTx(ctx, tx, &model.OrderStatusHistoryEntry{
		OrderID:   orderID,
		Status:    constant.OrderStatusNew,
		ChangedBy: "marketplace",
		Comment:   "first remote sighting",
	}); err != nil {
		logger.Error("[ApplyRemoteOrder] insert status history", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return orderID, nil
}

// resolveItems maps remote articles onto local product ids. Unknown
// articles keep product id zero; the ledger later logs and skips them.
func (s *orderAppImpl) resolveItems(ctx context.Context, sellerID uint64, items []model.OrderItem) ([]model.OrderItem, error) {
	articles, err := s.productRepo.GetArticles(ctx, sellerID)
	if err != nil {
		logger.Error("[ApplyRemoteOrder] get articles", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	byArticle := make(map[string]uint64, len(articles))
	for productID, article := range articles {
		byArticle[article] = productID
	}

	resolved := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		it.ProductID = byArticle[it.Article]
		resolved = append(resolved, it)
	}
	return resolved, nil
}

func (s *orderAppImpl) reserveRemote(ctx context.Context, sellerID, orderID uint64, remote *model.RemoteOrder) error {
	ledgerItems := make([]model.ItemQuantity, 0, len(remote.Items))
	for _, it := range remote.Items {
		if it.ProductID == 0 {
			continue
		}
		ledgerItems = append(ledgerItems, model.ItemQuantity{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if len(ledgerItems) == 0 {
		return nil
	}
	_, err := s.ledgerApp.Reserve(ctx, &model.LedgerRequest{
		SellerID: sellerID,
		Items:    ledgerItems,
		Reason:   "order " + remote.ExternalOrderID,
		Actor:    "marketplace",
		OrderID:  &orderID,
	})
	return err
}

// Transition applies newStatus to the order. Side effects run exactly
// once per (order, transition) because the stored status is compared
// first: a duplicate poll of the same remote status is a no-op. Ledger
// errors inside the transition are recorded on the order and do not
// prevent the status field itself from being updated.
func (s *orderAppImpl) Transition(ctx context.Context, orderID uint64, newStatus constant.OrderStatus, changedBy, comment string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Transition] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	order, err := s.orderRepo.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		_ = s.txRepo.RollbackTx(tx)
		logger.Error("[Transition] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		_ = s.txRepo.RollbackTx(tx)
		return errors.SetCustomError(constant.ErrNotFound)
	}
	// Seller-facing calls carry the caller id in the context; background
	// jobs do not and skip the ownership check.
	if callerID, ok := utilsContext.GetSellerID(ctx); ok && callerID != order.SellerID {
		_ = s.txRepo.RollbackTx(tx)
		return errors.SetCustomError(constant.ErrNotFound)
	}
	items, err := s.orderRepo.GetItemsTx(ctx, tx, orderID)
	if err != nil {
		_ = s.txRepo.RollbackTx(tx)
		logger.Error("[Transition] get items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Transition] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	order.Items = items

	// Idempotency guard: remote polls repeat unchanged orders.
	if order.Status == newStatus {
		return nil
	}
	if !canTransition(order.Status, newStatus) {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	reserveStatus, sideEffectErr := s.applySideEffect(ctx, order, newStatus)

	lastError := ""
	if sideEffectErr != nil {
		lastError = sideEffectErr.Error()
	}
	return s.writeStatus(ctx, orderID, newStatus, reserveStatus, lastError, changedBy, comment)
}

// applySideEffect executes the ledger command keyed by
// (old status -> new status) and returns the resulting reserve status.
func (s *orderAppImpl) applySideEffect(ctx context.Context, order *model.Order, newStatus constant.OrderStatus) (constant.ReserveStatus, error) {
	// FBO orders never mutate the ledger.
	if order.Channel == constant.OrderChannelFBO {
		return order.ReserveStatus, nil
	}

	deducting := newStatus == constant.OrderStatusDelivering ||
		(newStatus == constant.OrderStatusCompleted && order.Channel == constant.OrderChannelRetail)

	switch {
	case deducting && order.Status.IsPreShipment():
		if order.ReserveStatus != constant.ReserveStatusReserved {
			logger.Warn("[Transition] deduct requested but order is not reserved",
				zap.Uint64("order_id", order.ID),
				zap.String("reserve_status", string(order.ReserveStatus)))
			return order.ReserveStatus, nil
		}
		if _, err := s.ledgerApp.Deduct(ctx, s.ledgerRequest(order)); err != nil {
			return constant.ReserveStatusDeducted, err
		}
		return constant.ReserveStatusDeducted, nil

	case newStatus == constant.OrderStatusCancelled && order.Status.IsPreShipment():
		if order.ReserveStatus != constant.ReserveStatusReserved {
			logger.Warn("[Transition] return requested but order is not reserved",
				zap.Uint64("order_id", order.ID),
				zap.String("reserve_status", string(order.ReserveStatus)))
			return order.ReserveStatus, nil
		}
		returnStock, err := s.returnOnCancel(ctx, order.WarehouseID)
		if err != nil {
			return constant.ReserveStatusReturned, err
		}
		if returnStock {
			if _, err := s.ledgerApp.Return(ctx, s.ledgerRequest(order)); err != nil {
				return constant.ReserveStatusReturned, err
			}
		}
		return constant.ReserveStatusReturned, nil
	}

	return order.ReserveStatus, nil
}

// resolveWarehouse picks the local warehouse a remote order settles
// against: the warehouse_link match for the feed's warehouse id first,
// then the seller's highest-priority order-capable warehouse. Cancel
// semantics depend on it, so an unresolved warehouse is logged.
func (s *orderAppImpl) resolveWarehouse(ctx context.Context, sellerID uint64, remote *model.RemoteOrder) uint64 {
	if remote.WarehouseID != 0 {
		return remote.WarehouseID
	}

	if remote.MarketplaceWarehouseID != "" {
		warehouse, err := s.warehouseRepo.GetByLink(ctx, sellerID, remote.Marketplace, remote.MarketplaceWarehouseID)
		if err != nil {
			logger.Error("[ApplyRemoteOrder] resolve warehouse link", zap.String("error", err.Error()))
		} else if warehouse != nil {
			return warehouse.ID
		}
	}

	warehouses, err := s.warehouseRepo.ListBySeller(ctx, sellerID, false)
	if err != nil {
		logger.Error("[ApplyRemoteOrder] list warehouses", zap.String("error", err.Error()))
		return 0
	}
	for _, w := range warehouses {
		if w.UseForOrders {
			return w.ID
		}
	}

	logger.Warn("[ApplyRemoteOrder] no warehouse for remote order",
		zap.Uint64("seller_id", sellerID),
		zap.String("marketplace", remote.Marketplace))
	return 0
}

func (s *orderAppImpl) returnOnCancel(ctx context.Context, warehouseID uint64) (bool, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[Transition] get warehouse", zap.String("error", err.Error()))
		return false, err
	}
	if warehouse == nil {
		logger.Warn("[Transition] warehouse not found, keeping reservation released without return",
			zap.Uint64("warehouse_id", warehouseID))
		return false, nil
	}
	return warehouse.ReturnOnCancel, nil
}

func (s *orderAppImpl) ledgerRequest(order *model.Order) *model.LedgerRequest {
	items := make([]model.ItemQuantity, 0, len(order.Items))
	for _, it := range order.Items {
		if it.ProductID == 0 {
			continue
		}
		items = append(items, model.ItemQuantity{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &model.LedgerRequest{
		SellerID: order.SellerID,
		Items:    items,
		Reason:   "order " + order.ExternalOrderID,
		Actor:    "system",
		OrderID:  &order.ID,
	}
}

func (s *orderAppImpl) writeStatus(ctx context.Context, orderID uint64, status constant.OrderStatus, reserveStatus constant.ReserveStatus, lastError, changedBy, comment string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Transition] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.orderRepo.UpdateStatusTx(ctx, tx, orderID, status, reserveStatus, lastError); err != nil {
		logger.Error("[Transition] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.InsertStatusHistoryTx(ctx, tx, &model.OrderStatusHistoryEntry{
		OrderID:   orderID,
		Status:    status,
		ChangedBy: changedBy,
		Comment:   comment,
	}); err != nil {
		logger.Error("[Transition] insert status history", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Transition] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// recordError stores a transition-time failure on the order without
// touching its status history.
func (s *orderAppImpl) recordError(ctx context.Context, orderID uint64, status constant.OrderStatus, reserveStatus constant.ReserveStatus, cause error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return
	}
	if err := s.orderRepo.UpdateStatusTx(ctx, tx, orderID, status, reserveStatus, cause.Error()); err != nil {
		_ = s.txRepo.RollbackTx(tx)
		return
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[recordError] commit tx", zap.String("error", fmt.Sprintf("%v", err)))
	}
}

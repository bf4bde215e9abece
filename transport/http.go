package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/marketsync/seller-hub/application/ledger"
	"github.com/marketsync/seller-hub/application/order"
	"github.com/marketsync/seller-hub/application/scheduler"
	"github.com/marketsync/seller-hub/application/stocksync"
	"github.com/marketsync/seller-hub/cmd/config"
	"github.com/marketsync/seller-hub/constant"
	"github.com/marketsync/seller-hub/model"
	utilsContext "github.com/marketsync/seller-hub/utils/context"
	"github.com/marketsync/seller-hub/utils/errors"
	validatorx "github.com/marketsync/seller-hub/utils/validator"
)

type RestHandler struct {
	LedgerApp    ledger.LedgerApp
	OrderApp     order.OrderApp
	StockSyncApp stocksync.StockSyncApp
	Scheduler    scheduler.Scheduler
}

func NewTransport(cfg *config.Config, ledgerApp ledger.LedgerApp, orderApp order.OrderApp, stockSyncApp stocksync.StockSyncApp, sched scheduler.Scheduler) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		LedgerApp:    ledgerApp,
		OrderApp:     orderApp,
		StockSyncApp: stockSyncApp,
		Scheduler:    sched,
	}

	// Internal routes, called by the stock.changed consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))
	internal.HandleFunc("/stock-sync/seller/{sellerID}/product/{productID}", rh.SyncProductInternal).Methods(http.MethodPost)

	// Seller-facing routes
	mux.HandleFunc("/v1/inventory/reserve", rh.Reserve).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/deduct", rh.Deduct).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/return", rh.Return).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/income", rh.AcceptIncome).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/income-cancel", rh.CancelIncome).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/manual-set", rh.ManualSet).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/import", rh.ImportStocks).Methods(http.MethodPost)
	mux.HandleFunc("/v1/credentials", rh.SaveCredential).Methods(http.MethodPut)
	mux.HandleFunc("/v1/orders", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/v1/orders/{orderID}/status", rh.UpdateOrderStatus).Methods(http.MethodPut)
	mux.HandleFunc("/v1/orders/poll", rh.PollOrders).Methods(http.MethodPost)
	mux.HandleFunc("/v1/stock-sync/warehouse/{warehouseID}", rh.SyncAll).Methods(http.MethodPost)
	mux.HandleFunc("/v1/stock-sync/warehouse/{warehouseID}/article", rh.SyncOne).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(cfg.Auth.JWTSecret))

	return mux
}

func (s *RestHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	s.ledgerCall(w, r, s.LedgerApp.Reserve)
}

func (s *RestHandler) Deduct(w http.ResponseWriter, r *http.Request) {
	s.ledgerCall(w, r, s.LedgerApp.Deduct)
}

func (s *RestHandler) Return(w http.ResponseWriter, r *http.Request) {
	s.ledgerCall(w, r, s.LedgerApp.Return)
}

func (s *RestHandler) AcceptIncome(w http.ResponseWriter, r *http.Request) {
	s.ledgerCall(w, r, s.LedgerApp.AcceptIncome)
}

func (s *RestHandler) CancelIncome(w http.ResponseWriter, r *http.Request) {
	s.ledgerCall(w, r, s.LedgerApp.CancelIncome)
}

func (s *RestHandler) ledgerCall(w http.ResponseWriter, r *http.Request, call func(ctx context.Context, req *model.LedgerRequest) (*model.LedgerResult, error)) {
	ctx := r.Context()

	sellerID, ok := utilsContext.GetSellerID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.LedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.SellerID = sellerID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := call(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ManualSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sellerID, ok := utilsContext.GetSellerID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ManualSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.SellerID = sellerID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.LedgerApp.ManualSet(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sellerID, ok := utilsContext.GetSellerID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.SellerID = sellerID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type updateOrderStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment"`
}

func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utilsContext.GetSellerID(ctx); !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	orderID, err := strconv.ParseUint(mux.Vars(r)["orderID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.Transition(ctx, orderID, constant.OrderStatus(req.Status), "seller", req.Comment); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) PollOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sellerID, ok := utilsContext.GetSellerID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	marketplaceName := r.URL.Query().Get("marketplace")
	if marketplaceName == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.Scheduler.PollOrders(ctx, sellerID, marketplaceName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ImportStocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sellerID, ok := utilsContext.GetSellerID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	marketplaceName := r.URL.Query().Get("marketplace")
	if marketplaceName == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockSyncApp.ImportStocks(ctx, sellerID, marketplaceName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utilsContext.GetSellerID(ctx); !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	warehouseID, err := strconv.ParseUint(mux.Vars(r)["warehouseID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockSyncApp.SyncAll(ctx, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type syncOneRequest struct {
	Article  string `json:"article" validate:"required"`
	Quantity int64  `json:"quantity"`
}

func (s *RestHandler) SyncOne(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utilsContext.GetSellerID(ctx); !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	warehouseID, err := strconv.ParseUint(mux.Vars(r)["warehouseID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req syncOneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockSyncApp.SyncOne(ctx, warehouseID, req.Article, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type saveCredentialRequest struct {
	Marketplace string `json:"marketplace" validate:"required"`
	ClientID    string `json:"client_id"`
	APIKey      string `json:"api_key" validate:"required"`
}

func (s *RestHandler) SaveCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sellerID, ok := utilsContext.GetSellerID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req saveCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.StockSyncApp.SaveCredential(ctx, &model.Credential{
		SellerID:    sellerID,
		Marketplace: req.Marketplace,
		ClientID:    req.ClientID,
		APIKey:      req.APIKey,
	}); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) SyncProductInternal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vars := mux.Vars(r)
	sellerID, err := strconv.ParseUint(vars["sellerID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	productID, err := strconv.ParseUint(vars["productID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockSyncApp.SyncProduct(ctx, sellerID, productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/marketsync/seller-hub/application/order"
	"github.com/marketsync/seller-hub/application/stocksync"
	"github.com/marketsync/seller-hub/cmd/config"
	"github.com/marketsync/seller-hub/constant"
	"github.com/marketsync/seller-hub/model"
	credentialrepo "github.com/marketsync/seller-hub/repository/credential"
	redisrepo "github.com/marketsync/seller-hub/repository/redis"
	warehouserepo "github.com/marketsync/seller-hub/repository/warehouse"
	"github.com/marketsync/seller-hub/thirdparty/marketplace"
	"github.com/marketsync/seller-hub/utils/errors"
	"github.com/marketsync/seller-hub/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scheduler drives the two periodic jobs of the sync pipeline. Jobs are
// registered under fixed names so a process restart replaces the schedule
// instead of duplicating it, and singleton mode keeps a job from
// overlapping itself. Every (seller, marketplace) and (seller, warehouse)
// unit is a failure-isolation boundary: a panic or error in one unit is
// caught, logged, and never stops the loop for the remaining units.
type Scheduler interface {
	Start(ctx context.Context) error
	Stop() error
	RunOrderSync(ctx context.Context)
	RunStockSync(ctx context.Context)
	PollOrders(ctx context.Context, sellerID uint64, marketplaceName string) (*model.PollResult, error)
}

type schedulerImpl struct {
	config         *config.Config
	orderApp       order.OrderApp
	stockSyncApp   stocksync.StockSyncApp
	credentialRepo credentialrepo.CredentialRepository
	warehouseRepo  warehouserepo.WarehouseRepository
	redisRepo      redisrepo.Repository
	factory        *marketplace.Factory

	cron gocron.Scheduler
}

func NewScheduler(cfg *config.Config, orderApp order.OrderApp, stockSyncApp stocksync.StockSyncApp, credentialRepo credentialrepo.CredentialRepository, warehouseRepo warehouserepo.WarehouseRepository, redisRepo redisrepo.Repository, factory *marketplace.Factory) Scheduler {
	return &schedulerImpl{
		config:         cfg,
		orderApp:       orderApp,
		stockSyncApp:   stockSyncApp,
		credentialRepo: credentialRepo,
		warehouseRepo:  warehouseRepo,
		redisRepo:      redisRepo,
		factory:        factory,
	}
}

func (s *schedulerImpl) Start(ctx context.Context) error {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.cron = cron

	_, err = cron.NewJob(
		gocron.DurationJob(s.config.Sync.OrderInterval),
		gocron.NewTask(func() { s.RunOrderSync(ctx) }),
		gocron.WithName(constant.JobOrderSync),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	_, err = cron.NewJob(
		gocron.DurationJob(s.config.Sync.StockInterval),
		gocron.NewTask(func() { s.RunStockSync(ctx) }),
		gocron.WithName(constant.JobStockSync),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	cron.Start()
	logger.Info("scheduler started",
		zap.Duration("order_interval", s.config.Sync.OrderInterval),
		zap.Duration("stock_interval", s.config.Sync.StockInterval))
	return nil
}

func (s *schedulerImpl) Stop() error {
	if s.cron == nil {
		return nil
	}
	return s.cron.Shutdown()
}

// RunOrderSync executes one pass of order_sync_job: for every seller with
// credentials, for every configured marketplace, pull remote orders and
// drive state machine transitions.
func (s *schedulerImpl) RunOrderSync(ctx context.Context) {
	token, acquired, err := s.redisRepo.AcquireLock(ctx, constant.JobOrderSync, s.config.Sync.OrderInterval)
	if err != nil {
		logger.Error("[OrderSync] acquire lock", zap.String("error", err.Error()))
		return
	}
	if !acquired {
		logger.Info("[OrderSync] another instance holds the lock, skipping run")
		return
	}
	defer func() {
		_ = s.redisRepo.ReleaseLock(ctx, constant.JobOrderSync, token)
	}()

	sellers, err := s.credentialRepo.ListSellers(ctx)
	if err != nil {
		logger.Error("[OrderSync] list sellers", zap.String("error", err.Error()))
		return
	}

	g := &errgroup.Group{}
	g.SetLimit(s.workers())
	for _, sellerID := range sellers {
		sellerID := sellerID
		creds, err := s.credentialRepo.ListBySeller(ctx, sellerID)
		if err != nil {
			logger.Error("[OrderSync] list credentials", zap.Uint64("seller_id", sellerID), zap.String("error", err.Error()))
			continue
		}
		for _, cred := range creds {
			marketplaceName := cred.Marketplace
			g.Go(func() error {
				s.runUnit(fmt.Sprintf("order sync seller=%d marketplace=%s", sellerID, marketplaceName), func() error {
					result, err := s.PollOrders(ctx, sellerID, marketplaceName)
					if err != nil {
						return err
					}
					logger.Info("[OrderSync] unit done",
						zap.Uint64("seller_id", sellerID),
						zap.String("marketplace", marketplaceName),
						zap.Int("fetched", result.Fetched),
						zap.Int("upserted", result.Upserted),
						zap.Int("transitions", result.Transitions),
						zap.Int("failed", result.Failed))
					return nil
				})
				return nil
			})
		}
	}
	_ = g.Wait()
}

// RunStockSync executes one pass of stock_sync_job: a full availability
// sweep over every transfer-enabled warehouse of every seller.
func (s *schedulerImpl) RunStockSync(ctx context.Context) {
	token, acquired, err := s.redisRepo.AcquireLock(ctx, constant.JobStockSync, s.config.Sync.StockInterval)
	if err != nil {
		logger.Error("[StockSync] acquire lock", zap.String("error", err.Error()))
		return
	}
	if !acquired {
		logger.Info("[StockSync] another instance holds the lock, skipping run")
		return
	}
	defer func() {
		_ = s.redisRepo.ReleaseLock(ctx, constant.JobStockSync, token)
	}()

	sellers, err := s.credentialRepo.ListSellers(ctx)
	if err != nil {
		logger.Error("[StockSync] list sellers", zap.String("error", err.Error()))
		return
	}

	g := &errgroup.Group{}
	g.SetLimit(s.workers())
	for _, sellerID := range sellers {
		sellerID := sellerID
		warehouses, err := s.warehouseRepo.ListBySeller(ctx, sellerID, true)
		if err != nil {
			logger.Error("[StockSync] list warehouses", zap.Uint64("seller_id", sellerID), zap.String("error", err.Error()))
			continue
		}
		for _, warehouse := range warehouses {
			warehouseID := warehouse.ID
			g.Go(func() error {
				s.runUnit(fmt.Sprintf("stock sync seller=%d warehouse=%d", sellerID, warehouseID), func() error {
					result, err := s.stockSyncApp.SyncAll(ctx, warehouseID)
					if err != nil {
						return err
					}
					logger.Info("[StockSync] unit done",
						zap.Uint64("seller_id", sellerID),
						zap.Uint64("warehouse_id", warehouseID),
						zap.Int("synced", result.Synced),
						zap.Int("failed", result.Failed),
						zap.Int("skipped", result.Skipped))
					return nil
				})
				return nil
			})
		}
	}
	_ = g.Wait()
}

// runUnit is the failure-isolation boundary around one unit of work.
func (s *schedulerImpl) runUnit(name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in sync unit", zap.String("unit", name), zap.Any("panic", r))
		}
	}()
	if err := fn(); err != nil {
		logger.Error("sync unit failed", zap.String("unit", name), zap.String("error", err.Error()))
	}
}

// PollOrders pulls one seller's orders from one marketplace for the
// trailing window and applies them in receipt order. FBS orders drive the
// state machine and the ledger; FBO orders are upserted for analytics
// only. A failure on one order is counted and the remaining orders still
// apply.
func (s *schedulerImpl) PollOrders(ctx context.Context, sellerID uint64, marketplaceName string) (*model.PollResult, error) {
	connector, err := s.factory.Get(marketplaceName)
	if err != nil {
		return nil, err
	}
	cred, err := s.credentialRepo.Get(ctx, sellerID, marketplaceName)
	if err != nil {
		logger.Error("[PollOrders] get credential", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cred == nil {
		return nil, errors.SetCustomError(constant.ErrMissingCredential)
	}

	to := time.Now()
	from := to.Add(-s.config.Sync.OrderWindow)

	result := &model.PollResult{}

	fbsOrders, err := connector.GetFBSOrders(ctx, cred, from, to)
	if err != nil {
		// Not retried within this run; the next scheduled run is the
		// retry mechanism.
		return result, err
	}
	s.applyOrders(ctx, sellerID, fbsOrders, result)

	fboOrders, err := connector.GetFBOOrders(ctx, cred, from, to)
	if err != nil {
		return result, err
	}
	s.applyOrders(ctx, sellerID, fboOrders, result)

	return result, nil
}

func (s *schedulerImpl) applyOrders(ctx context.Context, sellerID uint64, orders []model.RemoteOrder, result *model.PollResult) {
	for i := range orders {
		result.Fetched++
		created, transitioned, err := s.orderApp.ApplyRemoteOrder(ctx, sellerID, &orders[i])
		if err != nil {
			logger.Error("[PollOrders] apply order",
				zap.Uint64("seller_id", sellerID),
				zap.String("external_order_id", orders[i].ExternalOrderID),
				zap.String("error", err.Error()))
			result.Failed++
			continue
		}
		if created {
			result.Upserted++
		}
		if transitioned {
			result.Transitions++
		}
	}
}

func (s *schedulerImpl) workers() int {
	if s.config.Sync.Workers > 0 {
		return s.config.Sync.Workers
	}
	return 1
}

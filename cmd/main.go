package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	ledgerapp "github.com/marketsync/seller-hub/application/ledger"
	orderapp "github.com/marketsync/seller-hub/application/order"
	schedulerapp "github.com/marketsync/seller-hub/application/scheduler"
	stocksyncapp "github.com/marketsync/seller-hub/application/stocksync"
	"github.com/marketsync/seller-hub/cmd/config"
	redisclient "github.com/marketsync/seller-hub/cmd/redis"
	credentialRepo "github.com/marketsync/seller-hub/repository/credential"
	historyRepo "github.com/marketsync/seller-hub/repository/history"
	inventoryRepo "github.com/marketsync/seller-hub/repository/inventory"
	orderRepo "github.com/marketsync/seller-hub/repository/order"
	productRepo "github.com/marketsync/seller-hub/repository/product"
	redisRepo "github.com/marketsync/seller-hub/repository/redis"
	synclogRepo "github.com/marketsync/seller-hub/repository/synclog"
	txRepo "github.com/marketsync/seller-hub/repository/tx"
	warehouseRepo "github.com/marketsync/seller-hub/repository/warehouse"
	"github.com/marketsync/seller-hub/thirdparty/marketplace"
	"github.com/marketsync/seller-hub/thirdparty/marketplace/ozon"
	"github.com/marketsync/seller-hub/thirdparty/marketplace/wildberries"
	"github.com/marketsync/seller-hub/thirdparty/rabbitmq"
	"github.com/marketsync/seller-hub/transport"
	"github.com/marketsync/seller-hub/utils/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize RabbitMQ publisher; events are best effort, the service
	// still runs without a broker
	publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, stock events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Consume stock.changed events; each message triggers a push of the
	// changed product through the internal API
	consumer, err := rabbitmq.NewConsumer(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password,
		"http://localhost:"+cfg.Server.Port, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Warn("err connect rabbitmq consumer, stock events will not be consumed", zap.Error(err))
		consumer = nil
	} else {
		defer consumer.Close()
	}

	// Initialize marketplace connectors
	factory := marketplace.NewFactory(
		ozon.NewConnector(cfg.Sync.ExternalTimeout),
		wildberries.NewConnector(cfg.Sync.ExternalTimeout),
	)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	HistoryRepo := historyRepo.NewHistoryRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CredentialRepo := credentialRepo.NewCredentialRepository(db, cfg.Credential.MasterKey)
	SynclogRepo := synclogRepo.NewSyncLogRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	LedgerApp := ledgerapp.NewLedgerApp(TxRepo, InventoryRepo, HistoryRepo, publisher)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, WarehouseRepo, ProductRepo, LedgerApp)
	StockSyncApp := stocksyncapp.NewStockSyncApp(cfg, LedgerApp, InventoryRepo, WarehouseRepo, ProductRepo, CredentialRepo, SynclogRepo, RedisRepo, factory)
	Scheduler := schedulerapp.NewScheduler(cfg, OrderApp, StockSyncApp, CredentialRepo, WarehouseRepo, RedisRepo, factory)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := Scheduler.Start(ctx); err != nil {
		logger.Fatal("err start scheduler", zap.Error(err))
	}

	if consumer != nil {
		go func() {
			if err := consumer.Start(ctx); err != nil {
				logger.Error("err run rabbitmq consumer", zap.Error(err))
			}
		}()
	}

	httpTransport := transport.NewTransport(cfg, LedgerApp, OrderApp, StockSyncApp, Scheduler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	cancel()
	if err := Scheduler.Stop(); err != nil {
		logger.Error("err stop scheduler", zap.Error(err))
	}
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}

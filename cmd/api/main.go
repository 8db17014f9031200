package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/config"
	"github.com/fathurrm/tokopos/migrations"
	"github.com/fathurrm/tokopos/pkg/broker"
	"github.com/fathurrm/tokopos/pkg/cache"
	"github.com/fathurrm/tokopos/pkg/database/postgres"
	"github.com/fathurrm/tokopos/pkg/logger"
	"github.com/fathurrm/tokopos/pkg/search"

	catH "github.com/fathurrm/tokopos/internal/category/handler"
	catRepoPkg "github.com/fathurrm/tokopos/internal/category/repository"
	catUCPkg "github.com/fathurrm/tokopos/internal/category/usecase"

	prodH "github.com/fathurrm/tokopos/internal/product/handler"
	prodRepoPkg "github.com/fathurrm/tokopos/internal/product/repository"
	prodUCPkg "github.com/fathurrm/tokopos/internal/product/usecase"

	varH "github.com/fathurrm/tokopos/internal/variant/handler"
	varRepoPkg "github.com/fathurrm/tokopos/internal/variant/repository"
	varUCPkg "github.com/fathurrm/tokopos/internal/variant/usecase"

	orderH "github.com/fathurrm/tokopos/internal/order/handler"
	orderRepoPkg "github.com/fathurrm/tokopos/internal/order/repository"
	orderUCPkg "github.com/fathurrm/tokopos/internal/order/usecase"

	statsH "github.com/fathurrm/tokopos/internal/stats/handler"
	statsUCPkg "github.com/fathurrm/tokopos/internal/stats/usecase"

	printH "github.com/fathurrm/tokopos/internal/printing/handler"
	printListenerPkg "github.com/fathurrm/tokopos/internal/printing/listener"
	printRepoPkg "github.com/fathurrm/tokopos/internal/printing/repository"
	printUCPkg "github.com/fathurrm/tokopos/internal/printing/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database and run migrations
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("connected to postgres", zap.String("db_name", cfg.Postgres.DBName))

	if err := postgres.Migrate(db, migrations.FS, ".", cfg.Postgres.DBName); err != nil {
		appLogger.Fatal("could not run migrations", zap.Error(err))
	}

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("could not connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Kafka
	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.OrderTopic,
	})
	defer kafkaProducer.Close()

	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.OrderTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("connected to kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrderTopic))

	// 6. Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("could not connect to elasticsearch, search falls back to the database", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("connected to elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 7. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	varRepo := varRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	printRepo := printRepoPkg.NewPGRepository(db)

	// 8. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, redisClient, esClient, appLogger)
	varUC := varUCPkg.NewVariantUseCase(varRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, kafkaProducer, appLogger)
	statsUC := statsUCPkg.NewStatsUseCase(orderRepo, appLogger)
	printUC := printUCPkg.NewPrintingUseCase(printRepo, varRepo, orderRepo, appLogger)

	// 9. Start Listener
	orderListener := printListenerPkg.NewOrderListener(kafkaConsumer, printUC, prodUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go orderListener.Start(ctx)

	// 10. Initialize HTTP server
	if cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	catH.NewCategoryHandler(catUC, appLogger).Register(api)
	prodH.NewProductHandler(prodUC, appLogger).Register(api)
	varH.NewVariantHandler(varUC, appLogger).Register(api)
	orderH.NewOrderHandler(orderUC, appLogger).Register(api)
	statsH.NewStatsHandler(statsUC, appLogger).Register(api)
	printH.NewPrintingHandler(printUC, appLogger).Register(api)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("starting http server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("server stopped")
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"walletwave.backend/internal/config"
	"walletwave.backend/internal/domain/entities"
	"walletwave.backend/internal/infrastructure/blockchain"
	"walletwave.backend/internal/infrastructure/cache"
	"walletwave.backend/internal/infrastructure/contracts"
	"walletwave.backend/internal/infrastructure/jobs"
	"walletwave.backend/internal/interfaces/http/handlers"
	"walletwave.backend/internal/interfaces/http/middleware"
	"walletwave.backend/internal/usecases"
	"walletwave.backend/pkg/logger"
	"walletwave.backend/pkg/redis"
)

var (
	loadDotenv   = godotenv.Load
	loadCfg      = config.Load
	initLog      = logger.Init
	initRedis    = redis.Init
	newEVMClient = blockchain.NewEVMClient
	runServer    = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the chain
	client, err := newEVMClient(cfg.Blockchain.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to rpc endpoint: %w", err)
	}
	defer client.Close()
	logger.Info(context.Background(), "Chain connected",
		zap.String("rpc", cfg.Blockchain.RPCURL),
		zap.Int64("chain_id", client.ChainID().Int64()))

	// Contract bindings
	gateway := contracts.NewGateway(client, cfg.Contracts.PaymentGateway, cfg.Blockchain.OperatorPrivateKey)
	registry := contracts.NewRegistry(client, cfg.Contracts.MerchantRegistry, cfg.Blockchain.OperatorPrivateKey)
	oracle := contracts.NewOracle(client, cfg.Contracts.PriceOracle)

	// Accepted tokens and mirror stores
	tokens := entities.NewTokenRegistry(cfg.Tokens.ETH, cfg.Tokens.BTC, cfg.Tokens.USDC)
	mirror := cache.NewPaymentStore(cfg.Freshness.StaleAfter)
	preferences := cache.NewPreferencesStore(cfg.Freshness.SessionTTL)

	// Initialize usecases
	merchantUsecase := usecases.NewMerchantUsecase(registry, mirror)
	paymentRequestUsecase := usecases.NewPaymentRequestUsecase(gateway, mirror, merchantUsecase, tokens, cfg.Server.PublicURL)
	settlementUsecase := usecases.NewSettlementUsecase(gateway, mirror, tokens)
	preferencesUsecase := usecases.NewPreferencesUsecase(preferences)
	tokenUsecase := usecases.NewTokenUsecase(oracle, tokens)

	// Initialize handlers
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase)
	paymentRequestHandler := handlers.NewPaymentRequestHandler(paymentRequestUsecase)
	settlementHandler := handlers.NewSettlementHandler(settlementUsecase)
	settingsHandler := handlers.NewSettingsHandler(preferencesUsecase)
	tokenHandler := handlers.NewTokenHandler(tokenUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refreshJob := jobs.NewMirrorRefreshJob(mirror, cfg.Freshness.RefreshInterval)
	go refreshJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.SessionMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		merchantHandler:       merchantHandler,
		paymentRequestHandler: paymentRequestHandler,
		settlementHandler:     settlementHandler,
		settingsHandler:       settingsHandler,
		tokenHandler:          tokenHandler,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		refreshJob.Stop()
		cancel()
	}()

	log.Printf("WalletWave backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

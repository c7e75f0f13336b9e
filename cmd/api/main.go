package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/adapter/blockchain"
	httpHandler "cryptopay-gateway/internal/adapter/http/handler"
	memStorage "cryptopay-gateway/internal/adapter/storage/memory"
	pgStorage "cryptopay-gateway/internal/adapter/storage/postgres"
	redisStorage "cryptopay-gateway/internal/adapter/storage/redis"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/service"
	"cryptopay-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// depositRefTTL bounds how long a referenceId hint stays in Redis. The
// ledger lookup is the fallback once it expires.
const depositRefTTL = 24 * time.Hour

// ledger groups the storage-backed ports so both drivers wire the same way.
type ledger struct {
	merchants     ports.MerchantRepository
	deposits      ports.TransactionRepository
	withdrawals   ports.WithdrawalRepository
	fees          ports.FeeSettingRepository
	notifications ports.NotificationRepository
	audits        ports.AuditRepository
	db            ports.DBTransactor
	health        ports.HealthChecker
	close         func()
}

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("driver", cfg.Database.Driver).
		Str("oracle", cfg.Oracle.Mode).
		Msg("Starting CryptoPay Gateway")

	ctx := context.Background()

	store, err := openLedger(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open ledger store")
	}
	defer store.close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close() //nolint:errcheck
	log.Info().Msg("Redis connected")

	refCache := redisStorage.NewDepositRefCache(rdb, depositRefTTL)
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	clock := clockwork.NewRealClock()

	oracle := newOracle(cfg.Oracle, log)
	wallets := blockchain.NewLocalWallets()

	// Notifications and webhooks
	dispatcher := service.NewWebhookDispatcher(
		encSvc,
		sigSvc,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		cfg.Webhook.MaxRetries,
		log,
	)
	notifier := service.NewNotificationService(store.notifications, dispatcher, log)

	// Deposit lifecycle
	settler := service.NewSettlementService(store.merchants, store.deposits, store.db, notifier, clock, log)
	monitor := service.NewMonitor(store.deposits, settler, oracle, clock, service.MonitorOptions{
		ConfirmDelay:  cfg.Monitor.ConfirmDelay,
		SweepInterval: cfg.Monitor.SweepInterval,
		OracleTimeout: cfg.Oracle.Timeout,
	}, log)
	depositSvc := service.NewDepositService(
		store.deposits,
		refCache,
		wallets,
		encSvc,
		monitor,
		clock,
		cfg.Monitor.ExpiryWindow,
		log,
	)

	// Initialize business services
	authSvc := service.NewAuthService(store.merchants, hashSvc, encSvc, tokenSvc, log)
	withdrawalSvc := service.NewWithdrawalService(store.merchants, store.withdrawals, store.fees, store.db, notifier, clock, log)
	feeSvc := service.NewFeeService(store.fees)
	reportingSvc := service.NewReportingService(store.merchants, store.deposits, store.notifications)
	adminSvc := service.NewAdminService(store.merchants, store.deposits, store.withdrawals, store.notifications, clock, log)
	merchantSvc := service.NewMerchantService(store.merchants, encSvc, log)
	auditSvc := service.NewAuditService(store.audits, log)

	if cfg.Admin.Password != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap admin account")
		}
	}

	// Recover deposits that were live before the last shutdown
	if err := monitor.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start transaction monitor")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		DepositSvc:     depositSvc,
		WithdrawalSvc:  withdrawalSvc,
		FeeSvc:         feeSvc,
		ReportingSvc:   reportingSvc,
		AdminSvc:       adminSvc,
		Monitor:        monitor,
		MerchantSvc:    merchantSvc,
		MerchantRepo:   store.merchants,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		RateLimiter:    rateLimitStore,
		HealthCheckers: []ports.HealthChecker{store.health, redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Pending deposits are recovered from the ledger on the next start.
	monitor.Stop()
	auditSvc.Wait()
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Webhook deliveries cancelled")
	}

	log.Info().Msg("Server exited")
}

func openLedger(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*ledger, error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn().Msg("Using in-memory ledger; balances are lost on restart")
		s := memStorage.NewStore()
		return &ledger{
			merchants:     memStorage.NewMerchantRepo(s),
			deposits:      memStorage.NewTransactionRepo(s),
			withdrawals:   memStorage.NewWithdrawalRepo(s),
			fees:          memStorage.NewFeeSettingRepo(s),
			notifications: memStorage.NewNotificationRepo(s),
			audits:        memStorage.NewAuditRepo(s),
			db:            s,
			health:        s,
			close:         func() {},
		}, nil
	}

	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(ctx, cfg.Database.DSN(), log); err != nil {
			return nil, err
		}
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("PostgreSQL connected")

	return &ledger{
		merchants:     pgStorage.NewMerchantRepo(pool),
		deposits:      pgStorage.NewTransactionRepo(pool),
		withdrawals:   pgStorage.NewWithdrawalRepo(pool),
		fees:          pgStorage.NewFeeSettingRepo(pool),
		notifications: pgStorage.NewNotificationRepo(pool),
		audits:        pgStorage.NewAuditRepo(pool),
		db:            pgStorage.NewTransactor(pool),
		health:        pgStorage.NewHealthCheck(pool),
		close:         pool.Close,
	}, nil
}

func newOracle(cfg config.OracleConfig, log zerolog.Logger) ports.ConfirmationOracle {
	if cfg.Mode == config.OracleModeSimulated {
		log.Warn().
			Float64("success_rate", cfg.SuccessRate).
			Float64("error_rate", cfg.ErrorRate).
			Msg("Using simulated confirmation oracle")
		return blockchain.NewSimulator(cfg.SuccessRate, cfg.ErrorRate, uint64(time.Now().UnixNano()), log)
	}
	return blockchain.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout, log)
}

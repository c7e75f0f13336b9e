package handler

import (
	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	DepositSvc     ports.DepositService
	WithdrawalSvc  ports.WithdrawalService
	FeeSvc         ports.FeeService
	ReportingSvc   ports.ReportingService
	AdminSvc       ports.AdminService
	Monitor        ports.TransactionMonitor
	MerchantSvc    ports.MerchantManagementService
	MerchantRepo   ports.MerchantRepository
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	RateLimiter    middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimiter == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl(middleware.GroupAuthRegister), authHandler.Register)
		auth.POST("/login", rl(middleware.GroupAuthLogin), authHandler.Login)
	}

	// --- HMAC-authenticated routes (merchant API) ---
	hmacAuth := middleware.HMACAuth(deps.MerchantRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)
	depositHandler := NewDepositHandler(deps.DepositSvc)
	deposits := v1.Group("/deposits", hmacAuth, rl(middleware.GroupDeposits))
	{
		deposits.POST("", depositHandler.Initiate)
		deposits.POST("/confirm", depositHandler.Confirm)
		deposits.GET("/:transaction_id", depositHandler.GetStatus)
	}

	// --- JWT-authenticated routes (dashboard) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	dashboardHandler := NewDashboardHandler(deps.ReportingSvc)
	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalSvc)

	v1.GET("/transactions", jwtAuth, rl(middleware.GroupDashboard), dashboardHandler.ListTransactions)

	withdrawals := v1.Group("/withdrawals", jwtAuth)
	{
		withdrawals.POST("", rl(middleware.GroupWithdrawals), withdrawalHandler.Request)
		withdrawals.GET("", rl(middleware.GroupDashboard), withdrawalHandler.ListOwn)
		withdrawals.POST("/:id/cancel", rl(middleware.GroupWithdrawals), withdrawalHandler.Cancel)
	}

	merchants := v1.Group("/merchants/me", jwtAuth, rl(middleware.GroupDashboard))
	{
		merchants.GET("/balance", dashboardHandler.GetBalance)
		if deps.MerchantSvc != nil {
			merchantHandler := NewMerchantHandler(deps.MerchantSvc)
			merchants.GET("", merchantHandler.GetProfile)
			merchants.PUT("/webhook", merchantHandler.UpdateWebhookURL)
			merchants.POST("/rotate-keys", merchantHandler.RotateKeys)
		}
	}

	// --- Admin routes ---
	adminHandler := NewAdminHandler(deps.FeeSvc, deps.ReportingSvc, deps.AdminSvc, deps.Monitor, deps.AuditSvc)
	admin := v1.Group("/admin", jwtAuth, middleware.RequireRole(domain.RoleAdmin), rl(middleware.GroupAdmin))
	{
		admin.GET("/withdrawals", withdrawalHandler.ListAll)
		admin.PATCH("/withdrawals/:id", withdrawalHandler.Resolve)
		admin.POST("/fees", adminHandler.CreateFee)
		admin.GET("/fees", adminHandler.ListFees)
		admin.GET("/notifications", adminHandler.ListNotifications)
		admin.GET("/notifications/summary", adminHandler.NotificationSummary)
		admin.PATCH("/notifications/:id/read", adminHandler.MarkNotificationRead)
		admin.GET("/merchants", adminHandler.ListMerchants)
		admin.GET("/merchants/:id", adminHandler.GetMerchant)
		admin.GET("/merchants/:id/transactions", adminHandler.ListMerchantTransactions)
		admin.PATCH("/merchants/:id/approve", adminHandler.SetMerchantStatus(domain.MerchantActionApprove))
		admin.PATCH("/merchants/:id/block", adminHandler.SetMerchantStatus(domain.MerchantActionBlock))
		admin.GET("/stats/merchants", adminHandler.AllMerchantStats)
		admin.GET("/stats/merchants/:id", adminHandler.MerchantStats)
		admin.GET("/stats/platform", adminHandler.PlatformStats)
		admin.GET("/monitor", adminHandler.MonitorStatus)
		admin.GET("/audit-logs", adminHandler.ListAuditLogs)
	}

	return r
}

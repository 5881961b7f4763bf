package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-workbench-api/internal/auth"
	"portfolio-workbench-api/internal/crud"
	"portfolio-workbench-api/internal/domain"
	"portfolio-workbench-api/internal/dto"
	"portfolio-workbench-api/internal/handler"
	"portfolio-workbench-api/internal/metrics"
	"portfolio-workbench-api/internal/middleware"
	"portfolio-workbench-api/internal/repository"
	"portfolio-workbench-api/internal/service"
)

// Config holds all dependencies needed to set up the router
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Issuer         *auth.TokenIssuer
	Blacklist      auth.Blacklist
	BasePath       string
	AllowedOrigins []string
	AuditPolicy    string
}

// Setup creates and configures the Gin router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	auditRepo := repository.NewAuditLogRepository(cfg.DB)
	ledgerRepo := repository.NewPortfolioLedgerRepository(cfg.DB)

	// Services
	auditService := service.NewAuditService(auditRepo, cfg.AuditPolicy, cfg.Logger, cfg.Metrics)
	ledgerService := service.NewLedgerService(ledgerRepo, cfg.Logger, cfg.Metrics)
	authService := service.NewAuthService(userRepo, cfg.Issuer, cfg.Blacklist, cfg.Logger, cfg.Metrics)

	// Handlers
	healthHandler := handler.NewHealthHandler(cfg.DB)
	authHandler := handler.NewAuthHandler(authService)
	auditHandler := handler.NewAuditHandler(auditService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)

	// Probes and metrics
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)

	// Public auth endpoints
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/token", authHandler.Login)
	}

	// Everything else requires a valid token
	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.Issuer, cfg.Blacklist, cfg.Metrics))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)

		protected.GET("/audit-logs", auditHandler.MyActions)
		protected.GET("/audit-logs/:targetType/:id", auditHandler.TargetHistory)
	}

	// Ledger hooks: portfolio and holding mutations append to the
	// portfolio's change history.
	portfolioHook := func(c *gin.Context, action string, p *domain.Portfolio) {
		ledgerService.RecordChange(c.Request.Context(), p.ID, action, map[string]interface{}{
			"name": p.Name,
		})
	}
	holdingHook := func(c *gin.Context, action string, h *domain.Holding) {
		ledgerService.RecordChange(c.Request.Context(), h.PortfolioID, "holding_"+action, map[string]interface{}{
			"holding_id": h.ID.String(),
			"asset_id":   h.AssetID.String(),
		})
	}

	// Generic CRUD routes, one group per entity
	handler.NewCRUDHandler[domain.User, *domain.User, dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserFilter](
		crud.NewStore[domain.User, *domain.User](cfg.DB), auditService, cfg.Metrics, nil,
	).Register(protected.Group("/users"))

	handler.NewCRUDHandler[domain.Portfolio, *domain.Portfolio, dto.CreatePortfolioRequest, dto.UpdatePortfolioRequest, dto.PortfolioFilter](
		crud.NewStore[domain.Portfolio, *domain.Portfolio](cfg.DB), auditService, cfg.Metrics, portfolioHook,
	).Register(protected.Group("/portfolios"))

	handler.NewCRUDHandler[domain.Holding, *domain.Holding, dto.CreateHoldingRequest, dto.UpdateHoldingRequest, dto.HoldingFilter](
		crud.NewStore[domain.Holding, *domain.Holding](cfg.DB), auditService, cfg.Metrics, holdingHook,
	).Register(protected.Group("/holdings"))

	handler.NewCRUDHandler[domain.Asset, *domain.Asset, dto.CreateAssetRequest, dto.UpdateAssetRequest, dto.AssetFilter](
		crud.NewStore[domain.Asset, *domain.Asset](cfg.DB), auditService, cfg.Metrics, nil,
	).Register(protected.Group("/assets"))

	handler.NewCRUDHandler[domain.AssetType, *domain.AssetType, dto.CreateAssetTypeRequest, dto.UpdateAssetTypeRequest, dto.AssetTypeFilter](
		crud.NewStore[domain.AssetType, *domain.AssetType](cfg.DB), auditService, cfg.Metrics, nil,
	).Register(protected.Group("/asset-types"))

	handler.NewCRUDHandler[domain.ETF, *domain.ETF, dto.CreateETFRequest, dto.UpdateETFRequest, dto.ETFFilter](
		crud.NewStore[domain.ETF, *domain.ETF](cfg.DB), auditService, cfg.Metrics, nil,
	).Register(protected.Group("/etfs"))

	handler.NewCRUDHandler[domain.TopHolding, *domain.TopHolding, dto.CreateTopHoldingRequest, dto.UpdateTopHoldingRequest, dto.TopHoldingFilter](
		crud.NewStore[domain.TopHolding, *domain.TopHolding](cfg.DB), auditService, cfg.Metrics, nil,
	).Register(protected.Group("/top-holdings"))

	// Portfolio change history
	protected.GET("/portfolios/:id/ledger", ledgerHandler.History)

	return r
}

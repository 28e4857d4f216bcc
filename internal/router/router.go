package router

import (
	"time"

	"temani/config"
	"temani/internal/handler"
	"temani/internal/ledger"
	"temani/internal/middleware"
	"temani/internal/reconciler"
	"temani/internal/repository"
	"temani/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	talentRepo := repository.NewTalentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Core
	txLedger := ledger.New(transactionRepo)
	notifSvc := service.NewNotificationService(notificationRepo)
	effects := service.NewSettlementEffects(bookingRepo, talentRepo, walletRepo, notifSvc)
	rec := reconciler.New(txLedger, effects)

	// Handlers
	bookingHandler := handler.NewBookingHandler(bookingRepo, talentRepo, txLedger)
	transactionHandler := handler.NewTransactionHandler(txLedger)
	talentHandler := handler.NewTalentHandler(talentRepo)
	walletHandler := handler.NewWalletHandler(walletRepo, talentRepo)
	webhookHandler := handler.NewGatewayWebhookHandler(rec, auditRepo, cfg)

	limited := middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second))

	api := r.Group("/api/v1")
	{
		api.POST("/bookings", limited, bookingHandler.Create)
		api.GET("/bookings/:id", limited, bookingHandler.Get)
		api.GET("/transactions/:id", limited, transactionHandler.Get)
		api.POST("/talents", limited, talentHandler.Create)
		api.GET("/talents/:id/tier", limited, talentHandler.GetTier)
		api.GET("/talents/:id/wallet", limited, walletHandler.GetBalance)
		api.GET("/talents/:id/wallet/entries", limited, walletHandler.GetEntries)

		// Gateway retries must never be rate limited.
		api.POST("/webhooks/gateway", webhookHandler.Handle)
	}

	return r
}

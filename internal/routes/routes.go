package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerfectPlumbing/plumbing-ops/internal/audit"
	"github.com/PerfectPlumbing/plumbing-ops/internal/cache"
	"github.com/PerfectPlumbing/plumbing-ops/internal/config"
	"github.com/PerfectPlumbing/plumbing-ops/internal/handlers"
	infraRepo "github.com/PerfectPlumbing/plumbing-ops/internal/infra/repository"
	"github.com/PerfectPlumbing/plumbing-ops/internal/middleware"
	"github.com/PerfectPlumbing/plumbing-ops/internal/storage"
	ucDashboard "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/dashboard"
	ucDocument "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/document"
	ucJob "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/job"
	ucPayment "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/payment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	c *cache.Cache,
	files *storage.FileStore,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	jobRepo := infraRepo.NewJobGormRepository(db, c)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	transitionJobUC := ucJob.NewTransitionJob(jobRepo, auditDispatcher)

	generateQuoteUC := ucDocument.NewGenerateQuote(jobRepo, auditDispatcher, files)

	recordPaymentUC := ucPayment.NewRecordPayment(jobRepo, auditDispatcher, files)

	statsUC := ucDashboard.NewGetStats(jobRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	customerHandler := handlers.NewCustomerHandler(db, c, auditDispatcher)
	jobHandler := handlers.NewJobHandler(db, c, auditDispatcher, transitionJobUC)
	documentHandler := handlers.NewDocumentHandler(db, c, generateQuoteUC)
	paymentHandler := handlers.NewPaymentHandler(db, c, recordPaymentUC)
	dashboardHandler := handlers.NewDashboardHandler(statsUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.GET("/customers", customerHandler.List)
			secured.POST("/customers", customerHandler.Create)
			secured.PATCH("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			// ------------------------------
			// JOBS
			// ------------------------------
			secured.GET("/jobs", jobHandler.List)
			secured.GET("/jobs/day", jobHandler.ListByDay)
			secured.POST("/jobs", jobHandler.Create)
			secured.GET("/jobs/:id", jobHandler.Get)
			secured.PATCH("/jobs/:id", jobHandler.Update)
			secured.PATCH("/jobs/:id/status", jobHandler.UpdateStatus)

			// ------------------------------
			// DOCUMENTS & PAYMENTS
			// ------------------------------
			secured.GET("/jobs/:id/documents", documentHandler.ListForJob)
			secured.POST("/jobs/:id/quote", documentHandler.GenerateQuote)
			secured.GET("/documents/:id", documentHandler.Get)

			secured.GET("/jobs/:id/payments", paymentHandler.ListForJob)
			secured.POST("/jobs/:id/payments", paymentHandler.Record)

			// ------------------------------
			// DASHBOARD & AUDIT
			// ------------------------------
			secured.GET("/dashboard/stats", dashboardHandler.Stats)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

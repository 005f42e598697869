package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadehouse/barberpos/internal/audit"
	"github.com/fadehouse/barberpos/internal/config"
	"github.com/fadehouse/barberpos/internal/handlers"
	infraRepo "github.com/fadehouse/barberpos/internal/infra/repository"
	"github.com/fadehouse/barberpos/internal/middleware"
	"github.com/fadehouse/barberpos/internal/models"
	"github.com/fadehouse/barberpos/internal/tokenstore"
	ucAttendance "github.com/fadehouse/barberpos/internal/usecase/attendance"
	ucSale "github.com/fadehouse/barberpos/internal/usecase/sale"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, tokens *tokenstore.Store) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	saleRepo := infraRepo.NewSaleGormRepository(db)
	attendanceRepo := infraRepo.NewAttendanceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	checkoutUC := ucSale.NewCheckout(saleRepo, auditDispatcher, cfg.ShopTimezone)
	checkInUC := ucAttendance.NewCheckIn(attendanceRepo, auditDispatcher, cfg.ShopTimezone)
	checkOutUC := ucAttendance.NewCheckOut(attendanceRepo, auditDispatcher, cfg.ShopTimezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokens)
	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	posHandler := handlers.NewPosHandler(checkoutUC)
	transactionHandler := handlers.NewTransactionHandler(db, auditDispatcher, cfg.ShopTimezone)
	attendanceHandler := handlers.NewAttendanceHandler(
		db,
		checkInUC,
		checkOutUC,
		attendanceRepo,
		cfg.ShopTimezone,
	)
	noteHandler := handlers.NewNoteHandler(db, auditDispatcher)
	reportHandler := handlers.NewReportHandler(db, cfg.ShopTimezone)
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
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, tokens))
		{
			secured.GET("/me", authHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			// Shared reads: every role sees the catalog and the customer list.
			secured.GET("/customers", customerHandler.List)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.GET("/customers/:id/notes", noteHandler.ListByCustomer)
			secured.GET("/services", serviceHandler.List)

			// ------------------------------
			// POINT OF SALE (cashier screen)
			// ------------------------------
			pos := secured.Group("/")
			pos.Use(middleware.RequireRoles(models.RoleOwner, models.RoleCashier))
			{
				pos.POST("/pos/checkout", posHandler.Checkout)
				pos.POST("/customers", customerHandler.Create)
			}

			// ------------------------------
			// BARBER SCREEN
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireRoles(models.RoleOwner, models.RoleBarber))
			{
				barber.GET("/attendance/today", attendanceHandler.Today)
				barber.POST("/attendance/check-in", attendanceHandler.CheckIn)
				barber.POST("/attendance/check-out", attendanceHandler.CheckOut)
				barber.POST("/customers/:id/notes", noteHandler.Create)
				barber.GET("/me/transactions/today", transactionHandler.ListMineToday)
			}

			// ------------------------------
			// OWNER DASHBOARD
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRoles(models.RoleOwner))
			{
				owner.PATCH("/customers/:id", customerHandler.Update)
				owner.DELETE("/customers/:id", customerHandler.Delete)

				owner.POST("/services", serviceHandler.Create)
				owner.PATCH("/services/:id", serviceHandler.Update)
				owner.DELETE("/services/:id", serviceHandler.Delete)

				owner.GET("/users", userHandler.List)
				owner.POST("/users", userHandler.Create)
				owner.PATCH("/users/:id", userHandler.Update)
				owner.DELETE("/users/:id", userHandler.Delete)

				owner.GET("/transactions", transactionHandler.List)
				owner.GET("/transactions/:id", transactionHandler.Get)
				owner.PATCH("/transactions/:id/cancel", transactionHandler.Cancel)

				owner.GET("/attendances", attendanceHandler.List)
				owner.GET("/reports/summary", reportHandler.Summary)
				owner.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}

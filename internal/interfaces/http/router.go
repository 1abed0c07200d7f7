package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/auth"
	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	SaleUC       *usecase.SaleUseCase
	CustomerUC   *usecase.CustomerUseCase
	ReportUC     *usecase.ReportUseCase
	ReportFileUC *usecase.ReportFileUseCase
	ConfigUC     *usecase.ConfigUseCase
	UserUC       *usecase.UserUseCase
	AuditUC      *usecase.AuditUseCase
	Token        TokenConfig
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Token, deps.Log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Token.Secret))
	anyRole := RequireRole(entity.Roles...)
	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products: lectura para todos, escritura admin/manager
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/low-stock", anyRole, productHandler.LowStock)
	products.Get("/categories", anyRole, productHandler.Categories)
	products.Get("/:id/stock", anyRole, productHandler.Stock)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Post("/", managers, productHandler.Create)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)

	// Sales
	sales := protected.Group("/sales", anyRole)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)

	// Customers
	customers := protected.Group("/customers", anyRole)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/frequent", customerHandler.Frequent)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", managers, customerHandler.Delete)

	// Reports
	reports := protected.Group("/reports", anyRole)
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportFileUC, deps.ConfigUC)
	reports.Get("/sales-by-day", reportHandler.SalesByDay)
	reports.Get("/top-products", reportHandler.TopProducts)
	reports.Get("/products-by-category", reportHandler.ProductsByCategory)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/pdf/:kind", reportHandler.PDF)
	reports.Get("/xlsx/:kind", reportHandler.XLSX)

	// Config
	configHandler := NewConfigHandler(deps.ConfigUC)
	protected.Get("/config", anyRole, configHandler.List)
	protected.Put("/config/:key", managers, configHandler.Set)

	// Users y auditoría (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)

	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit", adminOnly, auditHandler.List)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supermarket-pos/internal/application/auth"
	"github.com/tu-usuario/supermarket-pos/internal/application/purchasing"
	"github.com/tu-usuario/supermarket-pos/internal/application/reporting"
	"github.com/tu-usuario/supermarket-pos/internal/application/sales"
	"github.com/tu-usuario/supermarket-pos/internal/application/usecase"
	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProcessSale   *sales.ProcessSaleUseCase
	PurchaseOrder *purchasing.PurchaseOrderUseCase
	ReportUC      *reporting.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Categories y Suppliers (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Sales (protegido, cualquier rol autenticado registra ventas)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.ProcessSale)
	salesGroup.Post("/", saleHandler.Process)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Purchase orders (manager o admin)
	orders := protected.Group("/purchase-orders", RequireRole(entity.RoleAdmin, entity.RoleManager))
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrder)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id/items", orderHandler.Items)
	orders.Post("/:id/receive", orderHandler.Receive)

	// Reports y dashboard (manager o admin)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleManager))
	reports.Get("/sales", reportHandler.SalesReport)
	protected.Get("/dashboard", RequireRole(entity.RoleAdmin, entity.RoleManager), reportHandler.Dashboard)
}

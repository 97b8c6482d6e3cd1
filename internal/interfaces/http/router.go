package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lims-api/internal/application/alerts"
	"github.com/jhoicas/lims-api/internal/application/auth"
	"github.com/jhoicas/lims-api/internal/application/inventory"
	"github.com/jhoicas/lims-api/internal/application/reports"
	"github.com/jhoicas/lims-api/internal/application/usecase"
	"github.com/jhoicas/lims-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ComponentUC    *usecase.ComponentUseCase
	RecordMovement *inventory.RecordMovementUseCase
	LedgerUC       *inventory.LedgerUseCase
	AlertsUC       *alerts.AlertsUseCase
	DashboardUC    *reports.DashboardUseCase
	PDFUC          *reports.PDFUseCase
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Components (protegido)
	components := protected.Group("/components")
	componentHandler := NewComponentHandler(deps.ComponentUC)
	components.Post("/", componentHandler.Create)
	components.Get("/", componentHandler.Search)
	components.Get("/:id", componentHandler.GetByID)
	components.Put("/:id", componentHandler.Update)
	components.Delete("/:id", componentHandler.Delete)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordMovement, deps.LedgerUC)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	components.Get("/:id/movements", inventoryHandler.ListComponentMovements)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.AlertsUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/:kind/:component_id/read", notificationHandler.MarkRead)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC, deps.PDFUC)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/inventory.pdf", reportHandler.InventoryPDF)

	// Users (protegido, solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Delete)
}

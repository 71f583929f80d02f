package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armasset/ledger-api/internal/application/auth"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/application/metrics"
	"github.com/armasset/ledger-api/internal/application/usecase"
	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine    *ledger.Service
	Queries   *usecase.MovementQueryUseCase
	MetricsUC *metrics.UseCase
	BaseUC    *usecase.BaseUseCase
	AssetUC   *usecase.AssetUseCase
	AuthUC    *auth.AuthUseCase
	AuditRepo repository.AuditLogRepository
	JWTSecret string
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

	// Bases (alta solo Admin; lectura para todos los roles)
	bases := protected.Group("/bases")
	baseHandler := NewBaseHandler(deps.BaseUC)
	bases.Post("/", RequireRole(entity.RoleAdmin), baseHandler.Create)
	bases.Get("/", baseHandler.List)
	bases.Get("/:id", baseHandler.GetByID)

	// Assets (alta solo Admin; lectura y saldo para todos los roles)
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC, deps.Engine)
	assets.Post("/", RequireRole(entity.RoleAdmin), assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Get("/:id/balance", assetHandler.GetBalance)

	// Purchases (registro: Admin y Logistics Officer)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.Engine, deps.Queries)
	purchases.Post("/", RequireRole(entity.RoleAdmin, entity.RoleLogisticsOfficer), purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)

	// Transfers (registro: Admin y Logistics Officer)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.Engine, deps.Queries)
	transfers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleLogisticsOfficer), transferHandler.Create)
	transfers.Get("/", transferHandler.List)

	// Assignments (registro: Admin y Base Commander)
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.Engine, deps.Queries)
	assignments.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBaseCommander), assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)

	// Expenditures (registro: Admin y Base Commander)
	expenditures := protected.Group("/expenditures")
	expenditureHandler := NewExpenditureHandler(deps.Engine, deps.Queries)
	expenditures.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBaseCommander), expenditureHandler.Create)
	expenditures.Get("/", expenditureHandler.List)

	// Dashboard (todos los roles; el Base Commander queda acotado a su base)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.MetricsUC)
	dashboard.Get("/metrics", dashboardHandler.GetMetrics)

	// Audit log (solo Admin)
	auditHandler := NewAuditHandler(deps.AuditRepo)
	protected.Get("/audit-logs", RequireRole(entity.RoleAdmin), auditHandler.List)
}

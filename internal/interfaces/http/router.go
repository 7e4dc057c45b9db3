package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/operations"
	"github.com/jhoicas/Activos-api/internal/application/reports"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	BranchUC    *usecase.BranchUseCase
	WarehouseUC *usecase.WarehouseUseCase
	AssetUC     *usecase.AssetUseCase
	ApplyOpUC   *operations.ApplyOperationUseCase
	ListOpsUC   *operations.ListOperationsUseCase
	CorrectOpUC *operations.CorrectOperationUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *reports.UseCase
	AuditUC     *usecase.AuditUseCase
	JWTSecret   string
}

// Router registra las rutas de la API con su matriz de roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Público: registro de empresa y login.
	authHandler := NewAuthHandler(deps.AuthUC)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/companies/register", companyHandler.Register)

	// Rutas protegidas (requieren Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	adminContador := RequireRole(entity.RoleAdmin, entity.RoleContador)
	operadores := RequireRole(entity.RoleAdmin, entity.RoleContador, entity.RoleBodeguero)
	anyRole := RequireRole(entity.AllRoles...)

	// Empresa del token.
	protected.Get("/company", anyRole, companyHandler.Get)
	protected.Put("/company", adminOnly, companyHandler.Update)
	protected.Delete("/company", adminOnly, companyHandler.Deactivate)

	// Users (solo admin).
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)

	// Branches: lectura para todos, escritura solo admin.
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", anyRole, branchHandler.List)
	branches.Get("/:id", anyRole, branchHandler.GetByID)
	branches.Post("/", adminOnly, branchHandler.Create)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Delete("/:id", adminOnly, branchHandler.Deactivate)

	// Warehouses: lectura para todos, escritura admin/contador.
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", anyRole, warehouseHandler.List)
	warehouses.Get("/:id", anyRole, warehouseHandler.GetByID)
	warehouses.Post("/", adminContador, warehouseHandler.Create)
	warehouses.Put("/:id", adminContador, warehouseHandler.Update)
	warehouses.Delete("/:id", adminContador, warehouseHandler.Deactivate)

	// Assets: lectura para todos, alta/edición para operadores,
	// baja y bulk-update admin/contador.
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Get("/", anyRole, assetHandler.List)
	assets.Post("/", operadores, assetHandler.Create)
	assets.Post("/bulk-update", adminContador, assetHandler.BulkUpdate)
	assets.Get("/:id", anyRole, assetHandler.GetByID)
	assets.Put("/:id", operadores, assetHandler.Update)
	assets.Delete("/:id", adminContador, assetHandler.Deactivate)

	// Operations: registrar para operadores, leer para todos,
	// anular (corrección) solo admin.
	ops := protected.Group("/operations")
	operationHandler := NewOperationHandler(deps.ApplyOpUC, deps.ListOpsUC, deps.CorrectOpUC)
	ops.Post("/", operadores, operationHandler.Apply)
	ops.Get("/", anyRole, operationHandler.List)
	ops.Get("/:id", anyRole, operationHandler.GetByID)
	ops.Delete("/:id", adminOnly, operationHandler.Deactivate)

	// Dashboard y reportes: cualquier rol autenticado.
	dashboard := protected.Group("/dashboard", anyRole)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/categories", dashboardHandler.CategoryStats)

	reportsGroup := protected.Group("/reports", anyRole)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/assets", reportHandler.Assets)
	reportsGroup.Get("/operations", reportHandler.Operations)
	reportsGroup.Get("/assets/export/excel", reportHandler.ExportExcel)
	reportsGroup.Get("/assets/export/pdf", reportHandler.ExportPDF)
	reportsGroup.Get("/operations/export/excel", reportHandler.ExportOperationsExcel)

	// Auditoría: solo admin.
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit", adminOnly, auditHandler.List)
}

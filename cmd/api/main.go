package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/numbering"
	"github.com/jhoicas/Activos-api/internal/application/operations"
	"github.com/jhoicas/Activos-api/internal/application/reports"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/Activos-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Activos-api/internal/interfaces/http"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	opRepo := postgres.NewAssetOperationRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	allocator := numbering.NewAllocator(assetRepo)

	authUC := auth.NewUseCase(userRepo, companyRepo, auditRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo, auditRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, txRunner)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, branchRepo, txRunner)
	assetUC := usecase.NewAssetUseCase(assetRepo, warehouseRepo, auditRepo, allocator)
	applyOpUC := operations.NewApplyOperationUseCase(assetRepo, warehouseRepo, txRunner)
	listOpsUC := operations.NewListOperationsUseCase(opRepo)
	correctOpUC := operations.NewCorrectOperationUseCase(opRepo, auditRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(statsRepo)
	excelExporter := infraexcel.NewExporter()
	reportUC := reports.NewUseCase(assetRepo, opRepo, excelExporter, excelExporter, infrapdf.NewMarotoReportGenerator())
	auditUC := usecase.NewAuditUseCase(auditRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Activos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		UserUC:      userUC,
		BranchUC:    branchUC,
		WarehouseUC: warehouseUC,
		AssetUC:     assetUC,
		ApplyOpUC:   applyOpUC,
		ListOpsUC:   listOpsUC,
		CorrectOpUC: correctOpUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuditUC:     auditUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

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

	"github.com/armasset/ledger-api/internal/application/auth"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/application/metrics"
	"github.com/armasset/ledger-api/internal/application/usecase"
	infraaudit "github.com/armasset/ledger-api/internal/infrastructure/audit"
	"github.com/armasset/ledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/armasset/ledger-api/internal/interfaces/http"
	"github.com/armasset/ledger-api/pkg/config"
	"github.com/armasset/ledger-api/pkg/logger"

	_ "github.com/armasset/ledger-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	baseRepo := postgres.NewBaseRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	expenditureRepo := postgres.NewExpenditureRepository(pool)

	reads := ledger.TxRepos{
		Purchases:    purchaseRepo,
		Transfers:    transferRepo,
		Assignments:  assignmentRepo,
		Expenditures: expenditureRepo,
		Audit:        auditRepo,
	}
	txRunner := postgres.NewTxRunner(pool)
	auditor := infraaudit.NewSink(auditRepo, log)

	engine := ledger.NewService(txRunner, reads, assetRepo, baseRepo, auditor)
	queriesUC := usecase.NewMovementQueryUseCase(reads)
	metricsUC := metrics.NewUseCase(purchaseRepo, transferRepo, assignmentRepo, expenditureRepo)
	baseUC := usecase.NewBaseUseCase(baseRepo, auditor)
	assetUC := usecase.NewAssetUseCase(assetRepo, baseRepo, auditor)
	authUC := auth.NewAuthUseCase(userRepo, baseRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Asset Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Engine:    engine,
		Queries:   queriesUC,
		MetricsUC: metricsUC,
		BaseUC:    baseUC,
		AssetUC:   assetUC,
		AuthUC:    authUC,
		AuditRepo: auditRepo,
		JWTSecret: cfg.JWT.Secret,
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

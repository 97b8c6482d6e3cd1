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

	"github.com/jhoicas/lims-api/internal/application/alerts"
	"github.com/jhoicas/lims-api/internal/application/auth"
	"github.com/jhoicas/lims-api/internal/application/inventory"
	"github.com/jhoicas/lims-api/internal/application/reports"
	"github.com/jhoicas/lims-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/lims-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lims-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/lims-api/internal/interfaces/http"
	"github.com/jhoicas/lims-api/pkg/config"
	"github.com/jhoicas/lims-api/pkg/logger"
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

	componentRepo := postgres.NewComponentRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	notificationReadRepo := postgres.NewNotificationReadRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	componentUC := usecase.NewComponentUseCase(componentRepo)
	recordMovementUC := inventory.NewRecordMovementUseCase(txRunner, componentRepo)
	ledgerUC := inventory.NewLedgerUseCase(movementRepo)
	alertsUC := alerts.NewAlertsUseCase(componentRepo, notificationReadRepo, cfg.Alerts.StaleDays)
	dashboardUC := reports.NewDashboardUseCase(reportRepo, componentRepo, cfg.Alerts.StaleDays)
	userUC := usecase.NewUserUseCase(userRepo)

	// PDF: reporte de inventario exportable
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	pdfUC := reports.NewPDFUseCase(componentRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "LIMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ComponentUC:    componentUC,
		RecordMovement: recordMovementUC,
		LedgerUC:       ledgerUC,
		AlertsUC:       alertsUC,
		DashboardUC:    dashboardUC,
		PDFUC:          pdfUC,
		AuthUC:         authUC,
		UserUC:         userUC,
		JWTSecret:      cfg.JWT.Secret,
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

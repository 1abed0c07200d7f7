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

	"github.com/jhoicas/nexus-coffee/internal/application/auth"
	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql"
	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql/migrations"
	infrapdf "github.com/jhoicas/nexus-coffee/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/nexus-coffee/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/nexus-coffee/internal/interfaces/http"
	"github.com/jhoicas/nexus-coffee/pkg/config"
	"github.com/jhoicas/nexus-coffee/pkg/logger"
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
	db, err := mysql.NewDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("host", cfg.DB.Host).Str("database", cfg.DB.Database).Msg("conexión a MySQL")
	}
	defer db.Close()

	gw := mysql.NewGateway(db, log)

	// Esquema y datos mínimos (config + admin); los datos de ejemplo solo por cmd/migrate.
	migrator := migrations.New(gw, log)
	if _, err := migrator.Up(ctx); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if _, err := migrator.Seed(ctx, migrations.SeedOptions{}); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	userRepo := mysql.NewUserRepository(gw)
	productRepo := mysql.NewProductRepository(gw)
	saleRepo := mysql.NewSaleRepository(gw)
	customerRepo := mysql.NewCustomerRepository(gw)
	reportRepo := mysql.NewReportRepository(gw)
	configRepo := mysql.NewConfigRepository(gw)
	auditRepo := mysql.NewAuditRepository(gw)
	txRunner := mysql.NewTxRunner(gw)

	authUC := auth.NewAuthUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, customerRepo, txRunner)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	configUC := usecase.NewConfigUseCase(configRepo, cfg.Reports.DefaultCurrency, log)
	reportUC := usecase.NewReportUseCase(reportRepo, productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// Reportes: PDF con Maroto, XLSX con excelize y copia en PDF_DIR
	reportFileUC := usecase.NewReportFileUseCase(
		productRepo, saleRepo, reportRepo, configUC,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		infraxlsx.NewExcelizeGenerator(),
		infrapdf.NewDirArchive(cfg.Reports.PDFDir),
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nexus Coffee API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := gw.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "database": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		SaleUC:       saleUC,
		CustomerUC:   customerUC,
		ReportUC:     reportUC,
		ReportFileUC: reportFileUC,
		ConfigUC:     configUC,
		UserUC:       userUC,
		AuditUC:      auditUC,
		Token: httpRouter.TokenConfig{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			ExpMinutes: cfg.JWT.Expiration,
		},
		Log: log,
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

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
	"github.com/jhoicas/maletas-pro/internal/application/usecase"
	infraai "github.com/jhoicas/maletas-pro/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/maletas-pro/internal/infrastructure/pdf"
	"github.com/jhoicas/maletas-pro/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/maletas-pro/internal/interfaces/http"
	"github.com/jhoicas/maletas-pro/pkg/config"
	"github.com/jhoicas/maletas-pro/pkg/logger"
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

	// Inicialización explícita del esquema; el seed va aparte y es opt-in.
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}
	if cfg.DB.Seed {
		if err := postgres.SeedIfEmpty(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("seed de vendedoras demo")
		}
	}

	sellerRepo := postgres.NewSellerRepository(pool)
	caseRepo := postgres.NewCaseRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sellerUC := usecase.NewSellerUseCase(sellerRepo, caseRepo)
	caseUC := usecase.NewCaseUseCase(txRunner, caseRepo, itemRepo, sellerRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	visionSvc := infraai.NewAnthropicVisionService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	recognitionUC := usecase.NewRecognitionUseCase(visionSvc)

	receiptGenerator := infrapdf.NewMarotoCaseReceipt()
	receiptUC := usecase.NewReceiptUseCase(caseRepo, itemRepo, sellerRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // fotos en base64
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware hace
	// panic si el documento no existe, por eso se verifica antes de montarlo.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Maletas API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("documento OpenAPI no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SellerUC:      sellerUC,
		CaseUC:        caseUC,
		ReceiptUC:     receiptUC,
		StatsUC:       statsUC,
		RecognitionUC: recognitionUC,
	})

	// Bundle de presentación para las rutas no-API
	app.Static("/", cfg.HTTP.StaticDir)

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

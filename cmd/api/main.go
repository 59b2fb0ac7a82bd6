package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/restaurante-rb-api/internal/application/auth"
	"github.com/jhoicas/restaurante-rb-api/internal/application/ordering"
	"github.com/jhoicas/restaurante-rb-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/restaurante-rb-api/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/restaurante-rb-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-rb-api/pkg/config"
	"github.com/jhoicas/restaurante-rb-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	establishmentRepo := postgres.NewEstablishmentRepository(pool)
	orderQueryRepo := postgres.NewOrderQueryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	appMetrics := metrics.New()

	// Órdenes: transacción Pago → Orden → líneas, lecturas y comprobante PDF
	placeOrderUC := ordering.NewPlaceOrderUseCase(txRunner, ordering.RandomCodes{}, appMetrics, log, ordering.PlaceOrderConfig{
		Timeout:  cfg.Order.TxTimeout,
		Location: cfg.App.Location(),
	})
	orderQuery := ordering.NewQueryService(orderQueryRepo, log)
	orderPolicy := ordering.OwnerOrAdmin{}
	receiptUC := ordering.NewReceiptUseCase(orderQuery, orderPolicy, infrapdf.NewReceiptGenerator(), cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	establishmentUC := usecase.NewEstablishmentUseCase(establishmentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: true,
	}))
	app.Use(httpRouter.RequestLogger(log))
	app.Use(appMetrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name + " API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(appMetrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          userUC,
		ProductUC:       productUC,
		EstablishmentUC: establishmentUC,
		PlaceOrder:      placeOrderUC,
		OrderQuery:      orderQuery,
		OrderReceipt:    receiptUC,
		OrderPolicy:     orderPolicy,
		JWTSecret:       cfg.JWT.Secret,
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

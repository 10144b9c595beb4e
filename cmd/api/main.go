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

	"github.com/crodval/multicentro-api/internal/application/analytics"
	"github.com/crodval/multicentro-api/internal/application/auth"
	"github.com/crodval/multicentro-api/internal/application/inventario"
	"github.com/crodval/multicentro-api/internal/application/reportes"
	"github.com/crodval/multicentro-api/internal/application/usecase"
	"github.com/crodval/multicentro-api/internal/application/ventas"
	"github.com/crodval/multicentro-api/internal/infrastructure/excel"
	"github.com/crodval/multicentro-api/internal/infrastructure/postgres"
	httpRouter "github.com/crodval/multicentro-api/internal/interfaces/http"
	"github.com/crodval/multicentro-api/pkg/config"
	"github.com/crodval/multicentro-api/pkg/logger"
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

	// Zona horaria de operación de las sucursales; el listado "del día" y
	// los reportes dependen de este reloj, no del UTC del servidor.
	loc, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.App.TimeZone).Msg("zona horaria inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sucursalRepo := postgres.NewSucursalRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	vendedorRepo := postgres.NewVendedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	resumenRepo := postgres.NewResumenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	sucursalUC := usecase.NewSucursalUseCase(sucursalRepo)
	productoUC := usecase.NewProductoUseCase(txRunner, productoRepo, categoriaRepo, sucursalRepo)
	vendedorUC := usecase.NewVendedorUseCase(vendedorRepo, sucursalRepo)
	inventarioUC := inventario.NewUseCase(txRunner, inventarioRepo, movimientoRepo, sucursalRepo)
	ventasUC := ventas.NewUseCase(txRunner, ventaRepo, inventarioRepo, productoRepo, vendedorRepo, loc)
	resumenUC := analytics.NewResumenUseCase(resumenRepo, loc)
	reportesUC := reportes.NewUseCase(inventarioRepo, ventaRepo, sucursalRepo, excel.NewExporter(), loc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MultiCentro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		SucursalUC:   sucursalUC,
		ProductoUC:   productoUC,
		VendedorUC:   vendedorUC,
		InventarioUC: inventarioUC,
		VentasUC:     ventasUC,
		ResumenUC:    resumenUC,
		ReportesUC:   reportesUC,
		JWTSecret:    cfg.JWT.Secret,
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

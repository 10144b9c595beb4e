package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crodval/multicentro-api/internal/application/analytics"
	"github.com/crodval/multicentro-api/internal/application/auth"
	"github.com/crodval/multicentro-api/internal/application/inventario"
	"github.com/crodval/multicentro-api/internal/application/reportes"
	"github.com/crodval/multicentro-api/internal/application/usecase"
	"github.com/crodval/multicentro-api/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	SucursalUC   *usecase.SucursalUseCase
	ProductoUC   *usecase.ProductoUseCase
	VendedorUC   *usecase.VendedorUseCase
	InventarioUC *inventario.UseCase
	VentasUC     *ventas.UseCase
	ResumenUC    *analytics.ResumenUseCase
	ReportesUC   *reportes.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todo excepto el login va detrás del
// Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sucursales
	sucursalHandler := NewSucursalHandler(deps.SucursalUC)
	sucursales := protected.Group("/sucursales")
	sucursales.Get("/", sucursalHandler.List)
	sucursales.Get("/:id", sucursalHandler.GetByID)

	// Catálogo
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos := protected.Group("/productos")
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/codigo/:codigo", productoHandler.GetByCodigo)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)
	protected.Get("/categorias", productoHandler.ListCategorias)

	// Inventario por sucursal
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventarios := protected.Group("/inventarios")
	inventarios.Get("/", inventarioHandler.Listar)
	inventarios.Get("/buscar", inventarioHandler.Buscar)
	inventarios.Get("/movimientos/:lote", inventarioHandler.Movimientos)
	inventarios.Post("/ingresos", inventarioHandler.Ingresar)
	inventarios.Post("/traslados", inventarioHandler.Trasladar)

	// Ventas de caja
	ventaHandler := NewVentaHandler(deps.VentasUC)
	ventasGroup := protected.Group("/ventas")
	ventasGroup.Post("/", ventaHandler.Registrar)
	ventasGroup.Get("/dia", ventaHandler.ListarDia)

	// Vendedores y cajas
	vendedorHandler := NewVendedorHandler(deps.VendedorUC)
	vendedores := protected.Group("/vendedores")
	vendedores.Post("/", vendedorHandler.Create)
	vendedores.Get("/", vendedorHandler.List)
	vendedores.Get("/ranking", vendedorHandler.Ranking)
	vendedores.Put("/:id", vendedorHandler.Update)
	vendedores.Delete("/:id", vendedorHandler.Delete)

	// Resumen del día
	resumenHandler := NewResumenHandler(deps.ResumenUC)
	protected.Get("/resumen", resumenHandler.Resumen)

	// Reportes y exportación
	reporteHandler := NewReporteHandler(deps.ReportesUC)
	reportesGroup := protected.Group("/reportes")
	reportesGroup.Get("/inventario", reporteHandler.Inventario)
	reportesGroup.Get("/inventario/export", reporteHandler.ExportInventario)
	reportesGroup.Get("/inventario/export-completo", reporteHandler.ExportInventarioCompleto)
	reportesGroup.Get("/ventas", reporteHandler.Ventas)
	reportesGroup.Get("/ventas/export", reporteHandler.ExportVentas)
	reportesGroup.Get("/ventas/export-anual", reporteHandler.ExportVentasAnual)
}

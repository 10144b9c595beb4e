package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/application/reportes"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReporteHandler maneja los reportes y sus exportaciones a Excel (protegido).
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Inventario godoc
// @Summary      Reporte de inventario por rango de fechas
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id   query  int     true   "Sucursal"
// @Param        categoria_id  query  int     false  "Categoría"
// @Param        desde         query  string  false  "Desde (2006-01-02, por defecto inicio de mes)"
// @Param        hasta         query  string  false  "Hasta (2006-01-02, por defecto hoy)"
// @Param        limit         query  int     false  "Límite"  default(10)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ReporteInventarioResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/inventario [get]
func (h *ReporteHandler) Inventario(c *fiber.Ctx) error {
	out, err := h.uc.Inventario(filtro(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Ventas godoc
// @Summary      Reporte de ventas por rango de fechas
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id   query  int     true   "Sucursal"
// @Param        categoria_id  query  int     false  "Categoría"
// @Param        desde         query  string  false  "Desde (2006-01-02)"
// @Param        hasta         query  string  false  "Hasta (2006-01-02)"
// @Param        limit         query  int     false  "Límite"  default(10)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ReporteVentasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas [get]
func (h *ReporteHandler) Ventas(c *fiber.Ctx) error {
	out, err := h.uc.Ventas(filtro(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ExportInventario godoc
// @Summary      Exportar el reporte de inventario a Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        sucursal_id   query  int     true   "Sucursal"
// @Param        categoria_id  query  int     false  "Categoría"
// @Param        desde         query  string  false  "Desde (2006-01-02)"
// @Param        hasta         query  string  false  "Hasta (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /api/reportes/inventario/export [get]
func (h *ReporteHandler) ExportInventario(c *fiber.Ctx) error {
	nombre, data, err := h.uc.ExportInventario(filtro(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return adjunto(c, nombre, data)
}

// ExportInventarioCompleto godoc
// @Summary      Exportar todo el inventario, una hoja por categoría
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        sucursal_id  query  int  true  "Sucursal"
// @Success      200  {file}  binary
// @Router       /api/reportes/inventario/export-completo [get]
func (h *ReporteHandler) ExportInventarioCompleto(c *fiber.Ctx) error {
	sucursalID := int64(c.QueryInt("sucursal_id"))
	nombre, data, err := h.uc.ExportInventarioCompleto(sucursalID)
	if err != nil {
		return errorJSON(c, err)
	}
	return adjunto(c, nombre, data)
}

// ExportVentas godoc
// @Summary      Exportar el reporte de ventas a Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        sucursal_id   query  int     true   "Sucursal"
// @Param        categoria_id  query  int     false  "Categoría"
// @Param        desde         query  string  false  "Desde (2006-01-02)"
// @Param        hasta         query  string  false  "Hasta (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /api/reportes/ventas/export [get]
func (h *ReporteHandler) ExportVentas(c *fiber.Ctx) error {
	nombre, data, err := h.uc.ExportVentas(filtro(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return adjunto(c, nombre, data)
}

// ExportVentasAnual godoc
// @Summary      Exportar las ventas del año en curso
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        sucursal_id  query  int  true  "Sucursal"
// @Success      200  {file}  binary
// @Router       /api/reportes/ventas/export-anual [get]
func (h *ReporteHandler) ExportVentasAnual(c *fiber.Ctx) error {
	sucursalID := int64(c.QueryInt("sucursal_id"))
	nombre, data, err := h.uc.ExportVentasAnual(sucursalID)
	if err != nil {
		return errorJSON(c, err)
	}
	return adjunto(c, nombre, data)
}

func filtro(c *fiber.Ctx) dto.ReporteFiltro {
	return dto.ReporteFiltro{
		SucursalID:  int64(c.QueryInt("sucursal_id")),
		CategoriaID: int64(c.QueryInt("categoria_id")),
		Desde:       c.Query("desde"),
		Hasta:       c.Query("hasta"),
		PageRequest: dto.PageRequest{
			Limit:  c.QueryInt("limit", 10),
			Offset: c.QueryInt("offset", 0),
		},
	}
}

func adjunto(c *fiber.Ctx, nombre string, data []byte) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nombre))
	return c.Send(data)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/application/inventario"
)

// InventarioHandler maneja las peticiones HTTP de stock por sucursal (protegido).
type InventarioHandler struct {
	uc *inventario.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar inventario de una sucursal
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id   query  int  true   "Sucursal"
// @Param        categoria_id  query  int  false  "Categoría"
// @Success      200  {object}  dto.InventarioListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventarios [get]
func (h *InventarioHandler) Listar(c *fiber.Ctx) error {
	sucursalID := int64(c.QueryInt("sucursal_id"))
	if sucursalID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sucursal_id es requerido"})
	}
	categoriaID := int64(c.QueryInt("categoria_id"))
	out, err := h.uc.Listar(sucursalID, categoriaID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Buscar godoc
// @Summary      Buscar producto para la venta (por código o nombre)
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id   query  int     true   "Sucursal"
// @Param        categoria_id  query  int     false  "Categoría"
// @Param        q             query  string  true   "Código o nombre"
// @Success      200  {object}  dto.BuscarProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/buscar [get]
func (h *InventarioHandler) Buscar(c *fiber.Ctx) error {
	sucursalID := int64(c.QueryInt("sucursal_id"))
	q := c.Query("q")
	if sucursalID == 0 || q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sucursal_id y q son requeridos"})
	}
	categoriaID := int64(c.QueryInt("categoria_id"))
	out, err := h.uc.Buscar(sucursalID, categoriaID, q)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Ingresar godoc
// @Summary      Registrar ingreso de mercadería
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngresoRequest  true  "Lote de ingreso"
// @Success      201   {object}  dto.IngresoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventarios/ingresos [post]
func (h *InventarioHandler) Ingresar(c *fiber.Ctx) error {
	var in dto.IngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Ingresar(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Movimientos godoc
// @Summary      Movimientos registrados bajo un lote
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        lote  path  string  true  "Lote (UUID) del ingreso o traslado"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/movimientos/{lote} [get]
func (h *InventarioHandler) Movimientos(c *fiber.Ctx) error {
	out, err := h.uc.Movimientos(c.Params("lote"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Trasladar godoc
// @Summary      Trasladar stock entre sucursales
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrasladoRequest  true  "Lote de traslado"
// @Success      200   {object}  dto.TrasladoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventarios/traslados [post]
func (h *InventarioHandler) Trasladar(c *fiber.Ctx) error {
	var in dto.TrasladoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Trasladar(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

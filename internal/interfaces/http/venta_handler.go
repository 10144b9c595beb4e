package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/application/ventas"
)

// VentaHandler maneja las peticiones HTTP de la caja (protegido).
type VentaHandler struct {
	uc *ventas.UseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Cobrar el carrito
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVentaRequest  true  "Líneas del carrito"
// @Success      201   {object}  dto.RegistrarVentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Lineas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el carrito está vacío"})
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarDia godoc
// @Summary      Ventas del día (reloj local de la sucursal)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id   query  int  true   "Sucursal"
// @Param        categoria_id  query  int  false  "Categoría"
// @Param        vendedor_id   query  int  false  "Vendedor"
// @Success      200  {object}  dto.VentaListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/dia [get]
func (h *VentaHandler) ListarDia(c *fiber.Ctx) error {
	sucursalID := int64(c.QueryInt("sucursal_id"))
	if sucursalID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sucursal_id es requerido"})
	}
	categoriaID := int64(c.QueryInt("categoria_id"))
	vendedorID := int64(c.QueryInt("vendedor_id"))
	out, err := h.uc.ListarDia(sucursalID, categoriaID, vendedorID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crodval/multicentro-api/internal/application/dto"
	"github.com/crodval/multicentro-api/internal/application/usecase"
)

// VendedorHandler maneja las peticiones HTTP de vendedores y cajas (protegido).
type VendedorHandler struct {
	uc *usecase.VendedorUseCase
}

// NewVendedorHandler construye el handler.
func NewVendedorHandler(uc *usecase.VendedorUseCase) *VendedorHandler {
	return &VendedorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar vendedor
// @Tags         vendedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendedorRequest  true  "Datos del vendedor"
// @Success      201   {object}  dto.VendedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendedores [post]
func (h *VendedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Caja == "" || in.SucursalID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, caja y sucursal_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar vendedores de una sucursal
// @Tags         vendedores
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id  query  int     true   "Sucursal"
// @Param        nombre       query  string  false  "Filtro por nombre"
// @Param        caja         query  string  false  "Filtro por caja"
// @Success      200  {array}  dto.VendedorResponse
// @Router       /api/vendedores [get]
func (h *VendedorHandler) List(c *fiber.Ctx) error {
	sucursalID := int64(c.QueryInt("sucursal_id"))
	if sucursalID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sucursal_id es requerido"})
	}
	out, err := h.uc.List(sucursalID, c.Query("nombre"), c.Query("caja"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vendedor
// @Tags         vendedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vendedor"
// @Param        body  body  dto.UpdateVendedorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.VendedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendedores/{id} [put]
func (h *VendedorHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateVendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vendedor
// @Tags         vendedores
// @Security     Bearer
// @Param        id  path  int  true  "ID del vendedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendedores/{id} [delete]
func (h *VendedorHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Ranking godoc
// @Summary      Unidades vendidas por categoría
// @Tags         vendedores
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id  query  int  true   "Sucursal"
// @Param        vendedor_id  query  int  false  "Vendedor"
// @Success      200  {array}  dto.RankingCategoriaResponse
// @Router       /api/vendedores/ranking [get]
func (h *VendedorHandler) Ranking(c *fiber.Ctx) error {
	sucursalID := int64(c.QueryInt("sucursal_id"))
	if sucursalID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sucursal_id es requerido"})
	}
	out, err := h.uc.Ranking(sucursalID, int64(c.QueryInt("vendedor_id")))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crodval/multicentro-api/internal/application/analytics"
	"github.com/crodval/multicentro-api/internal/application/dto"
)

// ResumenHandler maneja el resumen de ventas del día (protegido).
type ResumenHandler struct {
	uc *analytics.ResumenUseCase
}

// NewResumenHandler construye el handler.
func NewResumenHandler(uc *analytics.ResumenUseCase) *ResumenHandler {
	return &ResumenHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen de ventas del día
// @Tags         resumen
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id  query  int  true  "Sucursal"
// @Success      200  {object}  dto.ResumenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/resumen [get]
func (h *ResumenHandler) Resumen(c *fiber.Ctx) error {
	sucursalID := int64(c.QueryInt("sucursal_id"))
	if sucursalID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sucursal_id es requerido"})
	}
	out, err := h.uc.ResumenDia(c.Context(), sucursalID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

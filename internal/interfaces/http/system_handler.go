package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/application/usecase"
)

// SystemHandler operaciones administrativas.
type SystemHandler struct {
	cases *usecase.CaseUseCase
}

// NewSystemHandler construye el handler.
func NewSystemHandler(cases *usecase.CaseUseCase) *SystemHandler {
	return &SystemHandler{cases: cases}
}

// Reset godoc
// @Summary      Vaciar piezas, maletas y vendedoras (wipe administrativo)
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/system/reset [delete]
func (h *SystemHandler) Reset(c *fiber.Ctx) error {
	if err := h.cases.Reset(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

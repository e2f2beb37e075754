package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/application/usecase"
	"github.com/jhoicas/maletas-pro/internal/domain"
)

// CaseHandler maneja las peticiones HTTP del ciclo de vida de maletas.
type CaseHandler struct {
	uc      *usecase.CaseUseCase
	receipt *usecase.ReceiptUseCase
}

// NewCaseHandler construye el handler.
func NewCaseHandler(uc *usecase.CaseUseCase, receipt *usecase.ReceiptUseCase) *CaseHandler {
	return &CaseHandler{uc: uc, receipt: receipt}
}

// List godoc
// @Summary      Listar maletas con el nombre de su vendedora
// @Tags         cases
// @Produce      json
// @Success      200  {array}  dto.CaseResponse
// @Router       /api/cases [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if list == nil {
		list = []*dto.CaseResponse{}
	}
	return c.JSON(list)
}

// Items godoc
// @Summary      Listar piezas de una maleta
// @Tags         cases
// @Produce      json
// @Param        id  path  string  true  "ID de la maleta"
// @Success      200  {array}   dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cases/{id}/items [get]
func (h *CaseHandler) Items(c *fiber.Ctx) error {
	items, err := h.uc.Items(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "maleta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if items == nil {
		items = []*dto.ItemResponse{}
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear maleta (estado InField, devolución a +60 días)
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCaseRequest  true  "Maleta con piezas y montos precomputados"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cases [post]
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "seller_id es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// Replace godoc
// @Summary      Reemplazar maleta (vendedora, montos y TODAS las piezas)
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la maleta"
// @Param        body  body  dto.SaveCaseRequest  true  "Contenido nuevo completo"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [put]
func (h *CaseHandler) Replace(c *fiber.Ctx) error {
	var in dto.SaveCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Replace(c.Context(), c.Params("id"), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "maleta no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "seller_id es requerido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ChangeStatus godoc
// @Summary      Cambiar estado de una maleta
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la maleta"
// @Param        body  body  dto.ChangeStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cases/{id}/status [patch]
func (h *CaseHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangeStatus(c.Params("id"), in.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "maleta no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser Available, InField o Finalized"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete godoc
// @Summary      Eliminar maleta (sus piezas caen en cascada)
// @Tags         cases
// @Produce      json
// @Param        id  path  string  true  "ID de la maleta"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [delete]
func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "maleta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// DeleteByStatus godoc
// @Summary      Eliminar todas las maletas de un estado
// @Tags         cases
// @Produce      json
// @Param        status  path  string  true  "Available | InField | Finalized"
// @Success      200  {object}  dto.BulkDeleteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cases/status/{status} [delete]
func (h *CaseHandler) DeleteByStatus(c *fiber.Ctx) error {
	changes, err := h.uc.DeleteByStatus(c.Params("status"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser Available, InField o Finalized"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.BulkDeleteResponse{Success: true, Changes: changes})
}

// Receipt godoc
// @Summary      Comprobante PDF de la maleta
// @Tags         cases
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la maleta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cases/{id}/pdf [get]
func (h *CaseHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receipt.Generate(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "maleta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="maleta.pdf"`)
	return c.Send(pdfBytes)
}

// WhatsappLink godoc
// @Summary      Deep link de WhatsApp con el recordatorio de devolución
// @Tags         cases
// @Produce      json
// @Param        id  path  string  true  "ID de la maleta"
// @Success      200  {object}  dto.WhatsappLinkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cases/{id}/whatsapp [get]
func (h *CaseHandler) WhatsappLink(c *fiber.Ctx) error {
	out, err := h.uc.WhatsappLink(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "maleta o vendedora no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

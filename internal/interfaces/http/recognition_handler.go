package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/application/usecase"
	"github.com/jhoicas/maletas-pro/internal/domain"
)

// RecognitionHandler expone el reconocimiento de piezas a partir de fotos.
type RecognitionHandler struct {
	uc *usecase.RecognitionUseCase
}

// NewRecognitionHandler construye el handler.
func NewRecognitionHandler(uc *usecase.RecognitionUseCase) *RecognitionHandler {
	return &RecognitionHandler{uc: uc}
}

// Recognize godoc
// @Summary      Reconocer piezas en una foto
// @Tags         ocr
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecognizeRequest  true  "Foto en base64 (data URI o base64 puro)"
// @Success      200   {object}  dto.RecognizeResponse
// @Failure      500   {object}  dto.ErrorResponse  "fallo del servicio de reconocimiento"
// @Router       /api/ocr [post]
func (h *RecognitionHandler) Recognize(c *fiber.Ctx) error {
	var in dto.RecognizeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items, err := h.uc.Recognize(c.Context(), in.Image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "image es requerida"})
		case errors.Is(err, domain.ErrRecognitionFailed):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RECOGNITION_FAILED", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.RecognizeResponse{Items: items})
}

// RecognizeBatch godoc
// @Summary      Reconocer piezas en varias fotos; cada una falla por separado
// @Tags         ocr
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecognizeBatchRequest  true  "Fotos en base64"
// @Success      200   {object}  dto.RecognizeBatchResponse
// @Router       /api/ocr/batch [post]
func (h *RecognitionHandler) RecognizeBatch(c *fiber.Ctx) error {
	var in dto.RecognizeBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Images) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "images no puede estar vacío"})
	}
	return c.JSON(h.uc.RecognizeBatch(c.Context(), in.Images))
}

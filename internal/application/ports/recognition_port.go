package ports

import (
	"context"

	"github.com/jhoicas/maletas-pro/internal/application/dto"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
)

// RecognitionService define el puerto de salida hacia el servicio externo de
// reconocimiento de imágenes. Cualquier adaptador (Anthropic, mock) debe
// implementar esta interfaz; la aplicación solo conoce este contrato.
type RecognitionService interface {
	// RecognizeItems analiza una foto (base64, con o sin prefijo data URI) y
	// devuelve las piezas candidatas: descripción obligatoria, precio opcional.
	// El contexto debe llevar un timeout para evitar bloqueos en la llamada externa.
	RecognizeItems(ctx context.Context, image string) ([]dto.RecognizedItem, error)
}

// CaseReceiptGenerator genera el comprobante imprimible de una maleta.
type CaseReceiptGenerator interface {
	GenerateReceipt(
		ctx context.Context,
		c *entity.Case,
		seller *entity.Seller,
		items []*entity.Item,
	) ([]byte, error)
}

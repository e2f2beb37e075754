package dto

import "github.com/shopspring/decimal"

// RecognizeRequest cuerpo de POST /api/ocr. Image es la foto en base64
// (con o sin prefijo data URI).
type RecognizeRequest struct {
	Image string `json:"image"`
}

// RecognizedItem candidata devuelta por el servicio de reconocimiento.
// Price en nil significa que el servicio no pudo leer un precio.
type RecognizedItem struct {
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// RecognizeResponse piezas reconocidas en una imagen.
type RecognizeResponse struct {
	Items []RecognizedItem `json:"items"`
}

// RecognizeBatchRequest cuerpo de POST /api/ocr/batch.
type RecognizeBatchRequest struct {
	Images []string `json:"images"`
}

// ImageResult resultado por imagen de un lote: piezas o motivo de fallo.
// Cada imagen falla de forma independiente; un error aquí no anula el lote.
type ImageResult struct {
	Items []RecognizedItem `json:"items,omitempty"`
	Error string           `json:"error,omitempty"`
}

// RecognizeBatchResponse un resultado por imagen, en el orden recibido.
type RecognizeBatchResponse struct {
	Results []ImageResult `json:"results"`
}

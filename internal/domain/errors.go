package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrSellerHasCases    = errors.New("la vendedora tiene maletas vinculadas")
	ErrRecognitionFailed = errors.New("el reconocimiento de imagen falló")
)

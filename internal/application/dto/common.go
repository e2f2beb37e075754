package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta de creación.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse acuse genérico de escritura.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// BulkDeleteResponse acuse de borrado masivo con filas afectadas.
type BulkDeleteResponse struct {
	Success bool  `json:"success"`
	Changes int64 `json:"changes"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveSellerRequest cuerpo de creación y de actualización (reemplazo completo).
// CommissionRate en nil aplica la tasa por defecto (0.3).
type SaveSellerRequest struct {
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// SellerResponse representación HTTP de una vendedora.
type SellerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CreatedAt      time.Time       `json:"created_at"`
}

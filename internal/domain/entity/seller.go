package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCommissionRate tasa de comisión aplicada cuando no se indica una (30%).
var DefaultCommissionRate = decimal.NewFromFloat(0.3)

// Seller representa una vendedora del directorio (venta por consignación).
// El teléfono se guarda tal cual se recibe; la normalización a solo dígitos
// ocurre únicamente al componer el mensaje de WhatsApp.
type Seller struct {
	ID             string
	Name           string
	Phone          string
	CommissionRate decimal.Decimal // fracción en [0,1]
	CreatedAt      time.Time
}

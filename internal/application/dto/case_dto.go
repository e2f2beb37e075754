package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseItemRequest pieza enviada al crear o reemplazar una maleta.
// Price en nil significa "identificada sin precio".
type CaseItemRequest struct {
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// SaveCaseRequest cuerpo de POST /api/cases y PUT /api/cases/:id.
// Los montos vienen precomputados por el caller y se persisten tal cual.
type SaveCaseRequest struct {
	SellerID        string            `json:"seller_id"`
	Photo           string            `json:"photo"`
	Items           []CaseItemRequest `json:"items"`
	TotalGross      decimal.Decimal   `json:"total_gross"`
	CommissionValue decimal.Decimal   `json:"commission_value"`
	EstimatedProfit decimal.Decimal   `json:"estimated_profit"`
}

// CaseResponse maleta unida al nombre de su vendedora.
type CaseResponse struct {
	ID              string          `json:"id"`
	SellerID        *string         `json:"seller_id"`
	SellerName      string          `json:"seller_name"`
	Status          string          `json:"status"`
	Photo           string          `json:"photo"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	CommissionValue decimal.Decimal `json:"commission_value"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
	DeliveryDate    time.Time       `json:"delivery_date"`
	ReturnDate      time.Time       `json:"return_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ItemResponse pieza de una maleta.
type ItemResponse struct {
	ID          string           `json:"id"`
	CaseID      string           `json:"case_id"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ChangeStatusRequest cuerpo de PATCH /api/cases/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// WhatsappLinkResponse deep link de cobro para la vendedora de la maleta.
type WhatsappLinkResponse struct {
	Link string `json:"link"`
}

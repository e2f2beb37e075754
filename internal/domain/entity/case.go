package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseStatus estado del ciclo de vida de una maleta.
type CaseStatus string

const (
	StatusAvailable CaseStatus = "Available"
	StatusInField   CaseStatus = "InField"
	StatusFinalized CaseStatus = "Finalized"
)

// Valid indica si el valor corresponde a un estado conocido.
// Las transiciones entre estados conocidos no se restringen.
func (s CaseStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusInField, StatusFinalized:
		return true
	}
	return false
}

// ReturnOffsetDays días entre la entrega y la fecha pactada de devolución.
const ReturnOffsetDays = 60

// Case representa una maleta entregada a una vendedora.
//
// Los montos (TotalGross, CommissionValue, EstimatedProfit) los calcula el
// caller al momento de guardar, con la tasa de comisión vigente en ese
// instante; el store los persiste tal cual y no los recalcula.
type Case struct {
	ID              string
	SellerID        *string // nullable a nivel de tipo, en la práctica siempre poblado
	Status          CaseStatus
	Photo           string // data URI o URL externa de la primera foto capturada
	TotalGross      decimal.Decimal
	CommissionValue decimal.Decimal
	EstimatedProfit decimal.Decimal
	DeliveryDate    time.Time
	ReturnDate      time.Time // DeliveryDate + ReturnOffsetDays
	CreatedAt       time.Time
}

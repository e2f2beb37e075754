package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InFieldMetrics agregados financieros de las maletas en campo.
type InFieldMetrics struct {
	Count           int
	TotalGross      decimal.Decimal
	CommissionValue decimal.Decimal
	EstimatedProfit decimal.Decimal
}

// TopSellerResult fila del ranking de vendedoras por valor bruto en campo.
type TopSellerResult struct {
	SellerID   string
	SellerName string
	TotalGross decimal.Decimal
	CaseCount  int
}

// StatsRepository consultas read-only para el dashboard.
type StatsRepository interface {
	// CountCases cuenta todas las maletas sin importar el estado.
	CountCases(ctx context.Context) (int, error)
	// GetInFieldMetrics devuelve conteo y sumas financieras de las maletas InField.
	GetInFieldMetrics(ctx context.Context) (InFieldMetrics, error)
	// GetTopSellers devuelve las `limit` vendedoras con mayor valor bruto sumado
	// entre sus maletas InField; empates resueltos por id de vendedora.
	GetTopSellers(ctx context.Context, limit int) ([]TopSellerResult, error)
}
